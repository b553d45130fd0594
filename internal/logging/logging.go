// Package logging holds the package-level zerolog logger used for debug
// output. It is silent until [InitLogger] is called.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

const timeFmt = "01-02 15:04:05"

var logger = zerolog.Nop()

// InitLogger routes debug output to out in zerolog's console format.
// A nil out is the same as calling [DiscardLogger].
func InitLogger(out io.Writer) {
	if out == nil {
		DiscardLogger()
		return
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: timeFmt,
	}
	logger = zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// DiscardLogger silences debug output again.
func DiscardLogger() { logger = zerolog.Nop() }

// GetLogger returns the package logger, for callers that need its level or
// want to derive a child logger.
func GetLogger() *zerolog.Logger { return &logger }

func Debug() *zerolog.Event { return logger.Debug() }
