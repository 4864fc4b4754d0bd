package config

import (
	"github.com/dshills/blocksel/internal/document"
	"github.com/dshills/blocksel/internal/logging"
)

// Config holds all blocksel settings.
type Config struct {
	// Diagnostics enables development checks, such as rejecting empty
	// render keys with a warning instead of failing.
	Diagnostics bool `toml:"diagnostics"`

	Log      LogConfig      `toml:"log"`
	Document DocumentConfig `toml:"document"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Prefix string `toml:"prefix"`
}

// DocumentConfig configures snapshot decoding.
type DocumentConfig struct {
	// Unit is the offset unit: rune, utf16, grapheme or byte.
	Unit string `toml:"unit"`
	// Validate enables leaf tree checks when snapshots are built.
	Validate bool `toml:"validate"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Prefix: "blocksel",
		},
		Document: DocumentConfig{
			Unit:     document.UnitRune.String(),
			Validate: true,
		},
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return &ValueError{Key: "log.level", Value: c.Log.Level}
	}
	if _, err := document.ParseUnit(c.Document.Unit); err != nil {
		return &ValueError{Key: "document.unit", Value: c.Document.Unit}
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// Unit returns the parsed offset unit.
func (c Config) Unit() document.Unit {
	unit, _ := document.ParseUnit(c.Document.Unit)
	return unit
}

// DocumentOptions returns the snapshot options implied by the config.
func (c Config) DocumentOptions() []document.Option {
	return []document.Option{
		document.WithUnit(c.Unit()),
		document.WithValidation(c.Document.Validate),
	}
}
