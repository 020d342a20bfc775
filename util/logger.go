package util

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// CreateLogEntry creates a logger around the given prefix, so all log entries output by it are marked
// with the prefix. Output goes to stderr so command output on stdout stays machine-readable.
func CreateLogEntry(prefix string, level logrus.Level) *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if prefix == "" {
		return logrus.NewEntry(logger)
	}

	return logger.WithField("prefix", fmt.Sprintf("[%s]", prefix))
}

// CreateLogEntryWithWriter is the same as CreateLogEntry, except it writes to the given writer.
// Primarily useful in tests to capture log output.
func CreateLogEntryWithWriter(writer io.Writer, prefix string, level logrus.Level) *logrus.Entry {
	entry := CreateLogEntry(prefix, level)
	entry.Logger.SetOutput(writer)

	return entry
}

// ParseLogLevel parses a level name (debug, info, warn, ...) into a logrus level, falling back to
// info with an error for unknown names.
func ParseLogLevel(levelStr string) (logrus.Level, error) {
	if levelStr == "" {
		return logrus.InfoLevel, nil
	}

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}

	return level, nil
}
