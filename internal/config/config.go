package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

const DefaultLogLevel = "warn"

// Config holds runtime options shared by every armysim command
type Config struct {
	LogLevel string // zerolog level name: trace, debug, info, warn, error, disabled
	NoColor  bool   // disable colored output
	Quiet    bool   // only print results
}

// Default returns the configuration used when no flags are given
func Default() Config {
	return Config{LogLevel: DefaultLogLevel}
}

// Validate checks that the configuration can be used
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses the configured log level
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Logger builds a human-readable logger writing to w
func (c Config) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return zerolog.Nop(), err
	}
	output := zerolog.ConsoleWriter{Out: w, NoColor: c.NoColor, TimeFormat: time.Kitchen}
	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
