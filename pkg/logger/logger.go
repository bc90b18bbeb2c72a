package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// InitLogger returns the application logger writing human readable lines to stdout.
func InitLogger() zerolog.Logger {
	return New(os.Stdout)
}

func New(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).With().Timestamp().Logger()
}
