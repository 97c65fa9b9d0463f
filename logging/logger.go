// Package logging provides structured JSON logging with levels and categories.
// The same logger backs the static site server and the in-browser page
// controllers, where it writes to the developer console.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log entry.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", name)
	}
}

// Entry represents a single log entry with structured fields.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Category  string         `json:"category"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Duration  *int64         `json:"duration_ms,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Logger is a structured logger that writes to multiple outputs.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	writers  []io.Writer
	source   string
	now      func() time.Time
}

// New creates a Logger. source names the emitting program and is added to
// every entry.
func New(source string, minLevel Level, writers ...io.Writer) *Logger {
	return &Logger{
		minLevel: minLevel,
		writers:  writers,
		source:   source,
		now:      time.Now,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New("", FATAL+1)
}

// Enabled reports whether entries at level are written.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level >= l.minLevel
}

// Log writes a log entry at the specified level.
func (l *Logger) Log(level Level, category, message string, fields map[string]any) {
	if !l.Enabled(level) {
		return
	}
	l.write(Entry{
		Timestamp: l.now().UTC(),
		Level:     level.String(),
		Category:  category,
		Message:   message,
		Fields:    fields,
	})
}

// Debug logs a debug message.
func (l *Logger) Debug(category, message string, fields map[string]any) {
	l.Log(DEBUG, category, message, fields)
}

// Info logs an info message.
func (l *Logger) Info(category, message string, fields map[string]any) {
	l.Log(INFO, category, message, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, message string, fields map[string]any) {
	l.Log(WARN, category, message, fields)
}

// Error logs an error message.
func (l *Logger) Error(category, message string, err error, fields map[string]any) {
	if !l.Enabled(ERROR) {
		return
	}
	entry := Entry{
		Timestamp: l.now().UTC(),
		Level:     ERROR.String(),
		Category:  category,
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	l.write(entry)
}

func (l *Logger) write(entry Entry) {
	if l.source != "" {
		fields := make(map[string]any, len(entry.Fields)+1)
		fields["source"] = l.source
		for k, v := range entry.Fields {
			fields[k] = v
		}
		entry.Fields = fields
	}
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal log entry: %v\n", err)
		return
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.writers {
		_, _ = w.Write(data)
	}
}

// AddWriter attaches another output.
func (l *Logger) AddWriter(w io.Writer) {
	if w == nil {
		return
	}
	l.mu.Lock()
	l.writers = append(l.writers, w)
	l.mu.Unlock()
}
