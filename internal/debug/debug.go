// Package debug writes development logs to ~/.coolbeans/debug.log.
package debug

import (
	"fmt"
	"os"
	"path/filepath"

	"coolbeans/pkg/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogger manages debug output to a log file
type DebugLogger struct {
	logger  *zap.SugaredLogger
	logFile *os.File
	path    string
}

// NewDebugLogger creates a debug logger writing to the .coolbeans directory
func NewDebugLogger() *DebugLogger {
	if err := config.EnsureCoolbeansDir(); err != nil {
		// Fall back to stderr if directory creation fails
		fmt.Fprintf(os.Stderr, "Warning: Failed to create .coolbeans directory: %v\n", err)
	}

	dir, err := config.GetCoolbeansDir()
	if err != nil {
		dir = "."
	}
	path := filepath.Join(dir, "debug.log")

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile = os.Stderr
		path = ""
	}

	d := newDebugLogger(logFile)
	d.path = path
	d.logger.Info("=== Debug session started ===")
	return d
}

func newDebugLogger(logFile *os.File) *DebugLogger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(logFile),
		zapcore.DebugLevel,
	)
	return &DebugLogger{
		logger:  zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar(),
		logFile: logFile,
	}
}

// Log adds a formatted message
func (d *DebugLogger) Log(format string, args ...interface{}) {
	d.logger.Debugf(format, args...)
}

// Path returns the log file path, or "" when logging to stderr
func (d *DebugLogger) Path() string {
	return d.path
}

// Close flushes and closes the debug log file
func (d *DebugLogger) Close() {
	d.logger.Info("=== Debug session ended ===")
	_ = d.logger.Sync()

	if d.logFile != nil && d.logFile != os.Stderr {
		if err := d.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to close debug log file: %v\n", err)
		}
	}
}

var globalDebugLogger *DebugLogger

// DebugLog logs a message to the global debug logger
func DebugLog(format string, args ...interface{}) {
	if globalDebugLogger != nil {
		globalDebugLogger.Log(format, args...)
	}
}

// InitDebugLogger initializes the global debug logger
func InitDebugLogger() *DebugLogger {
	globalDebugLogger = NewDebugLogger()
	return globalDebugLogger
}

// CloseDebugLogger closes the global debug logger, if any
func CloseDebugLogger() {
	if globalDebugLogger != nil {
		globalDebugLogger.Close()
		globalDebugLogger = nil
	}
}
