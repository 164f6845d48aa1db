// Package log provides structured logging with filesystem-based persistence.
//
// Logging is off unless logs.write is set; every emission below is then a no-op.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/deepc-skill/deepc/filesystem"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is a set of structured key/value pairs attached to an entry.
type Fields = logrus.Fields

var (
	enabled bool
	logger  = newDiscard()
)

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup opens the daily log file and applies formatter and level from configuration.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logger = newDiscard()
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		l.SetFormatter(&logrus.TextFormatter{})
	}

	lvl, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	logger = l
	return nil
}

// SetOutput redirects log output, enabling logging. Used by tests and the run command's --verbose flag.
func SetOutput(w io.Writer, level logrus.Level) {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	logger = l
	enabled = true
}

// WithFields returns an entry carrying the given structured fields.
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...interface{}) {
	if enabled {
		logger.Error(args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if enabled {
		logger.Errorf(format, args...)
	}
}

func Warn(args ...interface{}) {
	if enabled {
		logger.Warn(args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if enabled {
		logger.Warnf(format, args...)
	}
}

func Info(args ...interface{}) {
	if enabled {
		logger.Info(args...)
	}
}

func Infof(format string, args ...interface{}) {
	if enabled {
		logger.Infof(format, args...)
	}
}

func Debugf(format string, args ...interface{}) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
