// Package logger provides logging for the microblog server with
// dual-backend logging (console and file).
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"microblog/config"

	"github.com/op/go-logging"
)

const (
	logFileName = "microblog.log"
	timeFormat  = "2006/01/02 15:04:05"
)

var (
	// Usable before InitLogger wires backends; go-logging falls back to its
	// default stderr backend until then.
	logger  = logging.MustGetLogger("microblog")
	logFile *os.File
)

// InitLogger initializes the console and file backends. Console logging uses
// the specified level, file logging always uses DEBUG level.
func InitLogger(level logging.Level) {
	backends := make([]logging.Backend, 0, 2)

	if consoleBackend := initConsoleBackend(); consoleBackend != nil {
		leveledBackend := logging.AddModuleLevel(consoleBackend)
		leveledBackend.SetLevel(level, "microblog")
		backends = append(backends, leveledBackend)
	}

	if fileBackend := initFileBackend(); fileBackend != nil {
		leveledBackend := logging.AddModuleLevel(fileBackend)
		leveledBackend.SetLevel(logging.DEBUG, "microblog")
		backends = append(backends, leveledBackend)
	}

	multiBackend := logging.MultiLogger(backends...)
	logger.SetBackend(multiBackend)
}

func initConsoleBackend() logging.Backend {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	return logging.NewBackendFormatter(backend, newFormatter(true))
}

// initFileBackend creates the file logging backend. The log file is truncated
// on startup for fresh logs.
func initFileBackend() logging.Backend {
	logDir := config.GetLogFolder()
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log folder %s: %v\n", logDir, err)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o660)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", logPath, err)
		return nil
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file

	backend := logging.NewLogBackend(file, "", 0)
	return logging.NewBackendFormatter(backend, newFormatter(true))
}

func newFormatter(withTime bool) logging.Formatter {
	format := `%{level} - %{message}`
	if withTime {
		format = `%{time:` + timeFormat + `} %{level} - %{message}`
	}
	return logging.MustStringFormatter(format)
}

// CloseLogger closes the log file. Should be called during shutdown.
func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
