// Package config resolves runtime settings from command-line flags and
// ANDOR_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. ANDOR_UI.
const EnvPrefix = "ANDOR"

// Keys shared by flags and environment variables.
const (
	KeyUI       = "ui"
	KeyNoColor  = "no-color"
	KeyLogFile  = "log-file"
	KeyLogLevel = "log-level"
)

// UI modes.
const (
	UIPlain = "plain"
	UILive  = "live"
)

// Log levels.
const (
	LevelInfo  = "info"
	LevelDebug = "debug"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings for one run.
type Config struct {
	UI       string
	NoColor  bool
	LogFile  string
	LogLevel string
}

// DefaultConfig returns the plain console with logging off.
func DefaultConfig() Config {
	return Config{
		UI:       UIPlain,
		LogLevel: LevelInfo,
	}
}

// RegisterFlags adds the config flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()
	fs.String(KeyUI, def.UI, "Front end: plain (line-oriented) or live (full-screen)")
	fs.Bool(KeyNoColor, def.NoColor, "Disable colored output")
	fs.String(KeyLogFile, def.LogFile, "Write diagnostic JSON logs to this file")
	fs.String(KeyLogLevel, def.LogLevel, "Log level: info or debug")
}

// Load resolves the config from fs and the environment. A flag set on the
// command line wins over ANDOR_* variables, which win over flag defaults.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault(KeyUI, def.UI)
	v.SetDefault(KeyNoColor, def.NoColor)
	v.SetDefault(KeyLogFile, def.LogFile)
	v.SetDefault(KeyLogLevel, def.LogLevel)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	cfg := Config{
		UI:       strings.ToLower(strings.TrimSpace(v.GetString(KeyUI))),
		NoColor:  v.GetBool(KeyNoColor),
		LogFile:  strings.TrimSpace(v.GetString(KeyLogFile)),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown UI modes and log levels.
func (c Config) Validate() error {
	var errs []string

	switch c.UI {
	case UIPlain, UILive:
	default:
		errs = append(errs, fmt.Sprintf("%s: unknown mode %q (want %s or %s)", KeyUI, c.UI, UIPlain, UILive))
	}

	switch c.LogLevel {
	case LevelInfo, LevelDebug:
	default:
		errs = append(errs, fmt.Sprintf("%s: unknown level %q (want %s or %s)", KeyLogLevel, c.LogLevel, LevelInfo, LevelDebug))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

// Live reports whether the full-screen front end was requested.
func (c Config) Live() bool {
	return c.UI == UILive
}
