package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vvka-141/extscan/pkg/extscan"
)

// Entry is a single message recorded by BufferLogger.
type Entry struct {
	Level   string
	Message string
}

// BufferLogger records every message, verbose included.
type BufferLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBufferLogger creates an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) Verbose(format string, args ...interface{}) { l.add("verbose", format, args) }
func (l *BufferLogger) Info(format string, args ...interface{})    { l.add("info", format, args) }
func (l *BufferLogger) Warn(format string, args ...interface{})    { l.add("warn", format, args) }
func (l *BufferLogger) Error(format string, args ...interface{})   { l.add("error", format, args) }

func (l *BufferLogger) add(level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: msg})
}

// Entries returns a copy of the recorded messages.
func (l *BufferLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Messages returns the recorded messages of one level.
func (l *BufferLogger) Messages(level string) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any message of the level contains substr.
func (l *BufferLogger) Contains(level, substr string) bool {
	for _, m := range l.Messages(level) {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

var _ extscan.Logger = (*BufferLogger)(nil)
