// Package logging builds the named logxi loggers used across auctiondapp.
package logging

import (
	"io"
	"os"

	log "github.com/mgutz/logxi/v1"
)

var verbose bool

// SetVerbose raises every logger created afterwards to debug level.
func SetVerbose(v bool) {
	verbose = v
}

// New returns a logger writing to stderr.
func New(name string) log.Logger {
	return NewWithWriter(os.Stderr, name)
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer, name string) log.Logger {
	logger := log.NewLogger(w, name)
	if verbose {
		logger.SetLevel(log.LevelDebug)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() log.Logger {
	return log.NewLogger(io.Discard, "discard")
}
