package engine

import (
	"io"
	"log"
)

// nullLogger returns a logger that discards everything, for tests that
// exercise decision/tick internals directly without caring about
// diagnostic output.
func nullLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
