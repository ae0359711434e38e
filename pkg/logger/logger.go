// Package logger provides structured logging for the compile front end
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Logger interface for abstracted logging
type Logger interface {
	Info(message string, fields ...Field)
	Error(message string, fields ...Field)
	Warn(message string, fields ...Field)
	Debug(message string, fields ...Field)
	Success(message string, fields ...Field)
	WithBackend(backend string) Logger
}

// Field represents a structured logging field
type Field struct {
	Key   string
	Value interface{}
}

// WithField creates a new field
func WithField(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// BackendLogger implements Logger with backend awareness
type BackendLogger struct {
	logger  *logrus.Logger
	backend string
	mu      sync.RWMutex
}

// CustomFormatter formats logs with colored levels and a compact timestamp
type CustomFormatter struct {
	TimestampFormat string
	DisableColors   bool
}

// Format implements logrus.Formatter
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)

	var levelColor *color.Color
	var levelText string

	switch entry.Level {
	case logrus.ErrorLevel:
		levelColor = color.New(color.FgRed, color.Bold)
		levelText = "ERROR"
	case logrus.WarnLevel:
		levelColor = color.New(color.FgYellow, color.Bold)
		levelText = "WARN"
	case logrus.InfoLevel:
		levelColor = color.New(color.FgCyan)
		levelText = "INFO"
	case logrus.DebugLevel:
		levelColor = color.New(color.FgWhite, color.Faint)
		levelText = "DEBUG"
	default:
		levelColor = color.New(color.FgGreen)
		levelText = "SUCCESS"
	}

	// Build backend prefix
	backendPrefix := ""
	if backend, ok := entry.Data["backend"]; ok {
		backendPrefix = fmt.Sprintf("[%s] ", color.New(color.FgBlue).Sprint(backend))
		delete(entry.Data, "backend") // Remove from data to avoid duplication
	}

	var output string
	if f.DisableColors {
		output = fmt.Sprintf("[%s] %s: %s%s", timestamp, levelText, backendPrefix, entry.Message)
	} else {
		output = fmt.Sprintf("[%s] %s: %s%s",
			timestamp,
			levelColor.Sprint(levelText),
			backendPrefix,
			entry.Message,
		)
	}

	// Add remaining fields
	if len(entry.Data) > 0 {
		fields := " {"
		first := true
		for k, v := range entry.Data {
			if !first {
				fields += ", "
			}
			fields += fmt.Sprintf("%s=%v", k, v)
			first = false
		}
		fields += "}"
		output += color.New(color.FgWhite, color.Faint).Sprint(fields)
	}

	return []byte(output + "\n"), nil
}

// CreateLogger creates a new logger instance
func CreateLogger(logFile string, logLevel string) Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	log.SetFormatter(&CustomFormatter{
		TimestampFormat: "15:04:05",
		DisableColors:   false,
	})

	// All log output goes to stderr; stdout belongs to the build driver
	log.SetOutput(os.Stderr)

	// Add file output if specified
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			multiWriter := io.MultiWriter(os.Stderr, file)
			log.SetOutput(multiWriter)
		}
	}

	return &BackendLogger{
		logger: log,
	}
}

// CreateLoggerWithOutput creates a logger with custom output (for testing)
func CreateLoggerWithOutput(logFile string, logLevel string, output io.Writer) Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	log.SetFormatter(&CustomFormatter{
		TimestampFormat: "15:04:05",
		DisableColors:   true, // Disable colors for test output
	})

	log.SetOutput(output)

	return &BackendLogger{
		logger: log,
	}
}

// WithBackend creates a new logger with backend context
func (l *BackendLogger) WithBackend(backend string) Logger {
	return &BackendLogger{
		logger:  l.logger,
		backend: backend,
	}
}

// convertFields converts Field slice to logrus.Fields
func (l *BackendLogger) convertFields(fields []Field) logrus.Fields {
	result := make(logrus.Fields)
	if l.backend != "" {
		result["backend"] = l.backend
	}
	for _, f := range fields {
		result[f.Key] = f.Value
	}
	return result
}

// Info logs an info message
func (l *BackendLogger) Info(message string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithFields(l.convertFields(fields)).Info(message)
}

// Error logs an error message
func (l *BackendLogger) Error(message string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithFields(l.convertFields(fields)).Error(message)
}

// Warn logs a warning message
func (l *BackendLogger) Warn(message string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithFields(l.convertFields(fields)).Warn(message)
}

// Debug logs a debug message
func (l *BackendLogger) Debug(message string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithFields(l.convertFields(fields)).Debug(message)
}

// Success logs a success message (info level with special formatting)
func (l *BackendLogger) Success(message string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.WithFields(l.convertFields(fields)).Info("✅ " + message)
}

// ConsoleLogger provides simple console output for CLI
type ConsoleLogger struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsoleLogger creates a console logger for CLI output
func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// NewConsoleLoggerWithOutput creates a console logger with custom writers (for testing)
func NewConsoleLoggerWithOutput(out, errOut io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		out:    out,
		errOut: errOut,
	}
}

// Info prints info message
func (c *ConsoleLogger) Info(message string) {
	fmt.Fprintf(c.out, "%s %s\n", color.CyanString("[gomeson]"), message)
}

// Error prints error message
func (c *ConsoleLogger) Error(message string) {
	fmt.Fprintf(c.errOut, "%s %s\n", color.RedString("[gomeson]"), message)
}

// Warn prints warning message
func (c *ConsoleLogger) Warn(message string) {
	fmt.Fprintf(c.out, "%s %s\n", color.YellowString("[gomeson]"), message)
}

// Success prints success message
func (c *ConsoleLogger) Success(message string) {
	fmt.Fprintf(c.out, "%s ✅ %s\n", color.GreenString("[gomeson]"), message)
}
