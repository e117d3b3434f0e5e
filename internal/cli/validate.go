package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrand/prng"
	"github.com/katalvlaran/lvrand/stattest"
)

var (
	// ErrInvalidOption indicates an out-of-range --alpha or --intervals.
	ErrInvalidOption = errors.New("lvrand: invalid option")

	// ErrInvalidInput indicates a token in --input that is not a number.
	ErrInvalidInput = errors.New("lvrand: invalid input")
)

func (a *app) newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the statistical test suite on a sample",
		Long: `Run the chi-square, Kolmogorov–Smirnov, variance and poker tests on a
sample and print the report. The sample is drawn from the configured
generator, or read from --input (numbers separated by commas or whitespace;
"-" is stdin).
The exit status is 1 when any test does not pass. For example:
  lvrand validate --seed 12345
  lvrand validate --input sample.txt --alpha 0.01 --intervals 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.validate(cmd)
		},
	}
	flags := cmd.Flags()
	flags.Int(keySize, 10000, "sample size drawn from the generator")
	flags.String(keyInput, "", `read the sample from a file ("-" for stdin) instead of the generator`)
	flags.Int(keyIntervals, stattest.DefaultIntervals, "chi-square interval count (>= 2)")
	flags.Float64(keyAlpha, stattest.DefaultAlpha, "significance level in (0,1)")
	return cmd
}

func (a *app) validate(cmd *cobra.Command) error {
	opts, err := a.testOptions()
	if err != nil {
		return err
	}

	sample, source, err := a.loadSample(cmd)
	if err != nil {
		return err
	}
	a.logger.Debug("sample ready", slog.String("source", source), slog.Int("n", len(sample)))

	rep, err := stattest.Run(sample, opts...)
	if err != nil {
		return err
	}
	if err := writeReport(cmd.OutOrStdout(), rep, sample); err != nil {
		return err
	}

	passed := rep.AllPassed()
	a.logger.Info("validation finished", slog.String("source", source), slog.Int("n", len(sample)), slog.Bool("passed", passed))
	if !passed {
		return ErrValidationFailed
	}
	return nil
}

// testOptions checks --alpha and --intervals before handing them to the
// option constructors, which panic on bad values.
func (a *app) testOptions() ([]stattest.Option, error) {
	alpha := a.v.GetFloat64(keyAlpha)
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("%w: alpha %g outside (0,1)", ErrInvalidOption, alpha)
	}
	k := a.v.GetInt(keyIntervals)
	if k < 2 {
		return nil, fmt.Errorf("%w: intervals %d < 2", ErrInvalidOption, k)
	}
	return []stattest.Option{stattest.WithAlpha(alpha), stattest.WithIntervals(k)}, nil
}

// loadSample returns the sample and a short description of where it came from.
func (a *app) loadSample(cmd *cobra.Command) ([]float64, string, error) {
	switch input := a.v.GetString(keyInput); input {
	case "":
		size := a.v.GetInt(keySize)
		if size < 0 {
			return nil, "", fmt.Errorf("%w: %d", ErrInvalidCount, size)
		}
		g, err := a.newGenerator()
		if err != nil {
			return nil, "", err
		}
		s, err := prng.Draw(g, size)
		return s, "generator", err
	case "-":
		s, err := readSample(cmd.InOrStdin())
		return s, "stdin", err
	default:
		path, err := homedir.Expand(input)
		if err != nil {
			return nil, "", err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		s, err := readSample(f)
		return s, path, err
	}
}

// readSample parses numbers separated by commas and/or whitespace.
// Empty fields between consecutive separators are skipped.
func readSample(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(scanFields)
	var out []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d: %q", ErrInvalidInput, len(out)+1, sc.Text())
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// scanFields is a bufio.SplitFunc like bufio.ScanWords that also treats ','
// as a separator, so "0.1,0.2" yields two tokens of bounded size.
func scanFields(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSeparator(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func isSeparator(b byte) bool {
	switch b {
	case ',', ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
