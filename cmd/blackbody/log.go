package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// logLevelEnv overrides the default log level.
const logLevelEnv = "RGBA_LOG_LEVEL"

// namedLogger creates a logger writing to out with the given default level.
func namedLogger(name string, out io.Writer, level logrus.Level) *logrus.Logger {
	if env := strings.TrimSpace(os.Getenv(logLevelEnv)); env != "" {
		if lvl, err := logrus.ParseLevel(env); err == nil {
			level = lvl
		}
	}

	return &logrus.Logger{
		Out: out,
		Formatter: &callerTextFormatter{
			name: name,
			TextFormatter: logrus.TextFormatter{
				DisableTimestamp: true,
			},
		},
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}
}

// callerTextFormatter prefixes messages with logger name and caller position.
type callerTextFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry.
func (f *callerTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if _, file, no, ok := runtime.Caller(5); ok {
		entry.Message = fmt.Sprintf("[%s %-12s:%03d] %s", f.name, path.Base(file), no, entry.Message)
	} else {
		entry.Message = fmt.Sprintf("[%s] %s", f.name, entry.Message)
	}

	return f.TextFormatter.Format(entry)
}
