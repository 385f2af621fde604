// Package logging provides structured JSON logging with secret redaction for
// the SRP tooling. Protocol values (proofs, keys, salts) are never written in
// clear; see Redactor.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log entry.
type LogLevel string

// Log severity levels.
const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// levelOrder ranks levels from least to most severe.
var levelOrder = []LogLevel{LevelDebug, LevelInfo, LevelWarn, LevelError}

// LogFormat represents the output format for log entries.
type LogFormat string

// Log output formats.
const (
	// FormatJSON outputs logs as JSON (default).
	FormatJSON LogFormat = "json"
	// FormatHuman outputs logs in human-readable format.
	FormatHuman LogFormat = "human"
)

// ParseLevel converts a configured level name into a LogLevel.
func ParseLevel(level string) (LogLevel, error) {
	l := LogLevel(strings.ToLower(level))
	if !slices.Contains(levelOrder, l) {
		return LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}

// ParseFormat converts a configured format name into a LogFormat.
func ParseFormat(format string) (LogFormat, error) {
	switch LogFormat(strings.ToLower(format)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatHuman:
		return FormatHuman, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format %q", format)
	}
}

// Logger provides structured logging with secret redaction.
type Logger struct {
	level    LogLevel
	format   LogFormat
	redactor *Redactor
	stdout   io.Writer
	stderr   io.Writer
	mu       sync.Mutex
}

type logEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// New creates a new Logger writing to stdout, and errors to stderr.
func New(level LogLevel, format LogFormat) *Logger {
	return &Logger{
		level:    level,
		format:   format,
		redactor: NewRedactor(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// Discard returns a Logger that drops every entry.
func Discard() *Logger {
	l := New(LevelError, FormatJSON)
	l.SetOutput(io.Discard, io.Discard)
	return l
}

// SetOutput sets custom output writers for testing.
func (l *Logger) SetOutput(stdout, stderr io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout = stdout
	l.stderr = stderr
}

// Redactor returns the redactor applied to every entry.
func (l *Logger) Redactor() *Redactor {
	return l.redactor
}

// Debug logs a debug-level message.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.log(LevelDebug, msg, mergeFields(fields...))
}

// Info logs an info-level message.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.log(LevelInfo, msg, mergeFields(fields...))
}

// Warn logs a warn-level message.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	l.log(LevelWarn, msg, mergeFields(fields...))
}

// Error logs an error-level message.
func (l *Logger) Error(msg string, fields ...map[string]any) {
	l.log(LevelError, msg, mergeFields(fields...))
}

func (l *Logger) log(level LogLevel, msg string, fields map[string]any) {
	if !l.enabled(level) {
		return
	}

	entry := logEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   msg,
		Fields:    l.redactor.RedactFields(fields),
	}

	var output string
	if l.format == FormatHuman {
		output = formatHuman(entry)
	} else {
		output = formatJSON(entry)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	writer := l.stdout
	if level == LevelError {
		writer = l.stderr
	}
	_, _ = io.WriteString(writer, output)
}

// enabled reports whether level is at or above the logger's level.
func (l *Logger) enabled(level LogLevel) bool {
	return slices.Index(levelOrder, level) >= slices.Index(levelOrder, l.level)
}

func formatJSON(entry logEntry) string {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"timestamp":"%s","level":"error","message":"failed to marshal log entry: %s"}`+"\n",
			entry.Timestamp, err.Error())
	}
	return string(data) + "\n"
}

// formatHuman renders fields sorted by key so output is stable.
func formatHuman(entry logEntry) string {
	var output strings.Builder
	fmt.Fprintf(&output, "[%s] %s: %s", entry.Timestamp, entry.Level, entry.Message)

	for _, k := range slices.Sorted(maps.Keys(entry.Fields)) {
		fmt.Fprintf(&output, " %s=%v", k, entry.Fields[k])
	}

	output.WriteString("\n")
	return output.String()
}

func mergeFields(fields ...map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}

	merged := make(map[string]any)
	for _, f := range fields {
		maps.Copy(merged, f)
	}

	return merged
}

// WithFields creates a logger that adds fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *ContextLogger {
	return &ContextLogger{
		logger: l,
		fields: fields,
	}
}

// ContextLogger wraps a Logger with context-specific fields.
type ContextLogger struct {
	logger *Logger
	fields map[string]any
}

// WithFields returns a ContextLogger carrying both field sets.
func (cl *ContextLogger) WithFields(fields map[string]any) *ContextLogger {
	return &ContextLogger{
		logger: cl.logger,
		fields: mergeFields(cl.fields, fields),
	}
}

// Debug logs a debug-level message with context fields.
func (cl *ContextLogger) Debug(msg string, fields ...map[string]any) {
	cl.logger.Debug(msg, cl.merge(fields))
}

// Info logs an info-level message with context fields.
func (cl *ContextLogger) Info(msg string, fields ...map[string]any) {
	cl.logger.Info(msg, cl.merge(fields))
}

// Warn logs a warn-level message with context fields.
func (cl *ContextLogger) Warn(msg string, fields ...map[string]any) {
	cl.logger.Warn(msg, cl.merge(fields))
}

// Error logs an error-level message with context fields.
func (cl *ContextLogger) Error(msg string, fields ...map[string]any) {
	cl.logger.Error(msg, cl.merge(fields))
}

func (cl *ContextLogger) merge(fields []map[string]any) map[string]any {
	return mergeFields(append([]map[string]any{cl.fields}, fields...)...)
}
