// Package logging builds the logrus logger shared by the CLI commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to out at the named level
// (debug, info, warn/warning, error).
func New(out io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger, nil
}

// ParseLevel maps a level name to a logrus level. Trace, fatal and panic
// are not offered.
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warning", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("bad log level %q: want debug|info|warn|error", level)
	}
}

// ForRun tags logger entries with the command name and a fresh run id.
func ForRun(logger *logrus.Logger, command string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"command": command,
		"run_id":  uuid.NewString(),
	})
}
