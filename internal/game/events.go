package game

import (
	"fmt"
	"time"
)

// EventKind classifies event log entries.
type EventKind string

const (
	EventShuffle  EventKind = "shuffle"
	EventDeal     EventKind = "deal"
	EventDiscard  EventKind = "discard"
	EventPlay     EventKind = "play"
	EventCleared  EventKind = "round_cleared"
	EventFailed   EventKind = "round_failed"
	EventReset    EventKind = "reset"
	EventRejected EventKind = "rejected"
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	return string(k)
}

// Entry is one human-readable line of the event log.
type Entry struct {
	Time    time.Time
	Kind    EventKind
	Message string
	Err     error // Set for EventRejected
}

// String formats the entry as "[MM:SS] message".
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Time.Format("04:05"), e.Message)
}

// DefaultMaxEntries bounds the event log of a session.
const DefaultMaxEntries = 200

// EventLog keeps the most recent entries in chronological order.
type EventLog struct {
	entries []Entry
	max     int
}

// NewEventLog creates a log retaining at most max entries.
func NewEventLog(max int) *EventLog {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &EventLog{max: max}
}

// Append adds an entry, dropping the oldest one when the log is full.
func (l *EventLog) Append(e Entry) {
	if len(l.entries) == l.max {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, e)
}

// Len returns the number of retained entries.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the retained entries, oldest first.
func (l *EventLog) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Recent returns up to n entries, newest first. n <= 0 returns all of them.
func (l *EventLog) Recent(n int) []Entry {
	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(l.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// Last returns the newest entry.
func (l *EventLog) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}
