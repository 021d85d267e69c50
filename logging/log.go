package logging

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitLogger replaces the process logger and routes the std log package through it.
func InitLogger(level string, pretty bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	setOutput(out, lvl)
	return nil
}

// std log lines carry no level, so they are written whatever the filter is.
func setOutput(out io.Writer, lvl zerolog.Level) {
	logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	log.SetFlags(0)
	log.SetOutput(logger)
}

func Logger() zerolog.Logger {
	return logger
}
