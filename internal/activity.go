package internal

import (
	"time"

	"github.com/iksnae/comment-filter/internal/metrics"
)

// LogTimeFormat is the display format of log entry times
const LogTimeFormat = "15:04:05"

// ActivityLog is the append-only, user-facing status log of the page
type ActivityLog struct {
	entries   []LogEntry
	now       func() time.Time
	observers []func(LogEntry)
}

// NewActivityLog creates an empty log. A nil clock falls back to time.Now.
func NewActivityLog(now func() time.Time) *ActivityLog {
	if now == nil {
		now = time.Now
	}
	return &ActivityLog{now: now}
}

// Append records message with the current time and notifies observers
func (l *ActivityLog) Append(message string, severity Severity) {
	ts := l.now()
	entry := LogEntry{
		Message:   message,
		Severity:  severity,
		Timestamp: ts,
		Time:      ts.Format(LogTimeFormat),
	}
	l.entries = append(l.entries, entry)
	metrics.LogEntries.WithLabelValues(string(severity)).Inc()
	LogDebug("activity [%s] %s", severity, message)

	for _, fn := range l.observers {
		fn(entry)
	}
}

// OnAppend registers fn to run after every append
func (l *ActivityLog) OnAppend(fn func(LogEntry)) {
	l.observers = append(l.observers, fn)
}

// Entries returns a copy of the log in insertion order
func (l *ActivityLog) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries
func (l *ActivityLog) Len() int {
	return len(l.entries)
}
