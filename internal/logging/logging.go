// Package logging holds the process-wide logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is shared by every package. It writes nothing until Setup is called.
var Log = newLogger(io.Discard)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Setup configures the level and destination of Log. An empty path sends
// output to stderr unless quiet is set, in which case logs are discarded
// (the terminal belongs to the renderer). The returned closer must be closed
// on exit.
func Setup(level, path string, quiet bool) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Log.SetLevel(lvl)
	if path == "" {
		if quiet {
			Log.SetOutput(io.Discard)
		} else {
			Log.SetOutput(os.Stderr)
		}
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	Log.SetOutput(f)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
