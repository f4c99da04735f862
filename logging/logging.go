// Package logging configures the module's single zerolog Logger, the way
// the teacher's reporting package builds a console-or-JSON writer once and
// threads the resulting *zerolog.Logger through the rest of the program.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the logger's output format and verbosity.
type Config struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// New builds a configured zerolog.Logger writing to stderr: a human-
// readable console writer when Pretty is set, structured JSON otherwise.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = os.Stderr
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
