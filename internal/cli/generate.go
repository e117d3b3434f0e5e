package cli

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

// ErrInvalidCount indicates a negative --count or --size.
var ErrInvalidCount = errors.New("lvrand: count must be non-negative")

func (a *app) newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print values from the generator, one per line",
		Long: `Print values in [0,1) from the configured generator, one per line,
with enough digits to read them back exactly. For example:
  lvrand generate --seed 12345 --count 3
  lvrand generate --preset minstd --warmup 20 --count 1000 > sample.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd)
		},
	}
	cmd.Flags().Int(keyCount, 10, "number of values to print")
	return cmd
}

func (a *app) generate(cmd *cobra.Command) error {
	count := a.v.GetInt(keyCount)
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	g, err := a.newGenerator()
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	buf := make([]byte, 0, 32)
	for i := 0; i < count; i++ {
		buf = strconv.AppendFloat(buf[:0], g.Random(), 'f', -1, 64)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	a.logger.Debug("generated", slog.Int("count", count))
	return nil
}
