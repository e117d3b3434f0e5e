package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrand/lcg"
)

// Configuration keys. They double as flag names; the environment variable
// is LVRAND_ plus the upper-cased key with '-' replaced by '_'.
const (
	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyPreset    = "preset"
	keySeed      = "seed"
	keyWarmup    = "warmup"
	keyCount     = "count"
	keySize      = "size"
	keyInput     = "input"
	keyIntervals = "intervals"
	keyAlpha     = "alpha"

	envPrefix  = "LVRAND"
	configName = ".lvrand"
)

var (
	// ErrUnknownPreset indicates a --preset value outside lcg.PresetNames().
	ErrUnknownPreset = errors.New("lvrand: unknown preset")

	// ErrInvalidLogLevel indicates a --log-level that slog cannot parse.
	ErrInvalidLogLevel = errors.New("lvrand: invalid log level")
)

// loadConfig wires environment variables and the optional YAML file into v.
// A missing default file is fine; a missing explicit --config is an error.
func loadConfig(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString(keyConfig); cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		// No home directory: run on flags and environment only.
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// newLogger returns a text slog.Logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// newGenerator builds the generator described by the resolved configuration.
// Without an explicit seed the generator seeds itself from the clock.
func (a *app) newGenerator() (*lcg.Generator, error) {
	name := strings.ToLower(a.v.GetString(keyPreset))
	params, ok := lcg.Preset(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPreset, name, strings.Join(lcg.PresetNames(), ", "))
	}

	opts := []lcg.Option{lcg.WithParams(params), lcg.WithWarmup(a.v.GetInt(keyWarmup))}
	if a.v.IsSet(keySeed) {
		opts = append(opts, lcg.WithSeed(a.v.GetInt64(keySeed)))
	}
	g, err := lcg.New(opts...)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("generator ready",
		slog.String("preset", name),
		slog.Int64("state", g.State()),
		slog.Int("warmup", g.Warmup()),
		slog.Bool("explicit_seed", a.v.IsSet(keySeed)),
	)
	return g, nil
}
