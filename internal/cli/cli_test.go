package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/lvrand/internal/cli"
	"github.com/katalvlaran/lvrand/lcg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates name under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes lvrand with an isolated config file unless args name one.
func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	hasConfig := false
	for _, a := range args {
		if strings.HasPrefix(a, "--config") {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append(args, "--config", writeFile(t, "lvrand.yaml", "log-level: info\n"))
	}

	var out, errb bytes.Buffer
	root := cli.NewRootCommand(&out, &errb)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	code = 0
	if err := root.Execute(); err != nil {
		errb.WriteString("Error: " + err.Error() + "\n")
		code = 1
	}
	return code, out.String(), errb.String()
}

// expectedValues formats the first n values of the default generator.
func expectedValues(t *testing.T, n int, opts ...lcg.Option) []string {
	t.Helper()
	g, err := lcg.New(opts...)
	require.NoError(t, err)
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.FormatFloat(g.Random(), 'f', -1, 64)
	}
	return out
}

func TestGenerate(t *testing.T) {
	code, out, stderr := run(t, "", "generate", "--seed", "12345", "--count", "3")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, expectedValues(t, 3, lcg.WithSeed(12345)), strings.Fields(out))

	code, out, _ = run(t, "", "generate", "--seed", "7", "--preset", "classic", "--warmup", "20", "--count", "2")
	require.Equal(t, 0, code)
	want := expectedValues(t, 2, lcg.WithParams(lcg.Classic), lcg.WithSeed(7), lcg.WithWarmup(20))
	assert.Equal(t, want, strings.Fields(out))

	code, out, _ = run(t, "", "generate", "--seed", "1", "--count", "0")
	require.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"negativeCount", []string{"generate", "--count", "-1"}, "count must be non-negative"},
		{"unknownPreset", []string{"generate", "--preset", "mt19937"}, "unknown preset"},
		{"zeroSeed", []string{"generate", "--seed", "0"}, "absorbing zero state"},
		{"badLogLevel", []string{"generate", "--log-level", "loud"}, "invalid log level"},
		{"extraArgs", []string{"generate", "oops"}, "unknown command"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := run(t, "", tc.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tc.want)
		})
	}
}

func TestGenerate_ClockSeed(t *testing.T) {
	code, out, stderr := run(t, "", "generate", "--count", "5")
	require.Equal(t, 0, code, stderr)
	for _, f := range strings.Fields(out) {
		v, err := strconv.ParseFloat(f, 64)
		require.NoError(t, err)
		assert.True(t, v > 0 && v < 1, f)
	}
}

func TestValidate_Generator(t *testing.T) {
	code, out, stderr := run(t, "", "validate", "--seed", "12345", "--size", "10000")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "4 of 4 tests passed")
	assert.Contains(t, out, "10,000")
	for _, name := range []string{"chi-square", "kolmogorov-smirnov", "variance", "poker"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, stderr, "validation finished")
}

func TestValidate_PipedFromGenerate(t *testing.T) {
	code, sample, _ := run(t, "", "generate", "--seed", "12345", "--count", "10000", "--preset", "minstd")
	require.Equal(t, 0, code)

	code, out, stderr := run(t, sample, "validate", "--input", "-")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "4 of 4 tests passed")
}

func TestValidate_CommaSeparatedInput(t *testing.T) {
	code, sample, _ := run(t, "", "generate", "--seed", "12345", "--count", "10000")
	require.Equal(t, 0, code)
	joined := strings.Join(strings.Fields(sample), ",")

	// One long comma-separated line.
	code, out, stderr := run(t, joined, "validate", "--input", "-")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "4 of 4 tests passed")
	assert.Contains(t, out, "10,000")

	// Mixed separators, empty fields and a file on disk.
	path := writeFile(t, "mixed.csv", "0.1,0.2, 0.3\n0.4,,0.5\r\n0.6\t0.7,\n")
	code, out, stderr = run(t, "", "validate", "--input", path)
	assert.Equal(t, 1, code, "seven values are too few to pass")
	assert.NotContains(t, stderr, "invalid input")
	assert.Contains(t, out, "kolmogorov-smirnov  7")

	code, _, stderr = run(t, "0.1,0.2,zebra,0.4", "validate", "--input", "-")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `token 3: "zebra"`)
}

func TestValidate_ReportsMoments(t *testing.T) {
	code, out, stderr := run(t, "0.25 0.75 0.25 0.75", "validate", "--input", "-")
	require.Equal(t, 1, code, stderr)
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "0.500000  (expected 0.500000)")
	assert.Contains(t, out, "std dev")
	assert.Contains(t, out, "(expected 0.288675)")
}

func TestValidate_FailingSampleExitsNonZero(t *testing.T) {
	path := writeFile(t, "constant.txt", strings.Repeat("0.5\n", 10000))

	code, out, _ := run(t, "", "validate", "--input", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "inconclusive")
	assert.Contains(t, out, "fail")
	assert.Contains(t, out, "0 of 4 tests passed")

	// Execute maps the failure to exit status 1 without an extra error line.
	var o, e bytes.Buffer
	cfg := writeFile(t, "lvrand.yaml", "log-level: error\n")
	assert.Equal(t, 1, cli.Execute([]string{"validate", "--input", path, "--config", cfg}, &o, &e))
	assert.NotContains(t, e.String(), "Error:")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"alphaRange", "", []string{"validate", "--seed", "1", "--alpha", "2"}, "invalid option"},
		{"intervals", "", []string{"validate", "--seed", "1", "--intervals", "1"}, "invalid option"},
		{"negativeSize", "", []string{"validate", "--size", "-5"}, "count must be non-negative"},
		{"badToken", "0.1 0.2 zebra", []string{"validate", "--input", "-"}, `token 3: "zebra"`},
		{"emptyInput", "", []string{"validate", "--input", "-"}, "invalid sample"},
		{"outOfRange", "0.1 1.5 0.3", []string{"validate", "--input", "-"}, "outside the unit interval"},
		{"missingFile", "", []string{"validate", "--input", "/nonexistent/sample.txt"}, "no such file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := run(t, tc.stdin, tc.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tc.want)
		})
	}
}

func TestConfig_FileAndEnvironment(t *testing.T) {
	cfg := writeFile(t, "lvrand.yaml", "preset: minstd\nseed: 1\ncount: 2\n")

	code, out, stderr := run(t, "", "generate", "--config", cfg)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, expectedValues(t, 2, lcg.WithParams(lcg.MinStd), lcg.WithSeed(1)), strings.Fields(out))

	// Flags override the file.
	code, out, _ = run(t, "", "generate", "--config", cfg, "--seed", "2", "--count", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, expectedValues(t, 1, lcg.WithParams(lcg.MinStd), lcg.WithSeed(2)), strings.Fields(out))

	// The environment overrides the file.
	t.Setenv("LVRAND_SEED", "3")
	code, out, _ = run(t, "", "generate", "--config", cfg, "--count", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, expectedValues(t, 1, lcg.WithParams(lcg.MinStd), lcg.WithSeed(3)), strings.Fields(out))

	code, _, stderr = run(t, "", "generate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "config:")
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "", "version")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "lvrand "+cli.Version), out)
}
