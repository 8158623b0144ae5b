package relay

import "sync"

// Entry is one observed webhook or monitoring event.
type Entry struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

func (e Entry) String() string {
	if e.Message == "" {
		return e.Event
	}
	return e.Event + ": " + e.Message
}

// Log is a bounded FIFO of observed events, shared between the relay, the
// webhook ingress and the log command. Capacity is enforced eagerly on
// every append.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	cap     int
}

func NewLog(capacity int) *Log {
	return &Log{cap: capacity}
}

func (l *Log) Append(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
}

// Tail returns up to n most recent entries, oldest first.
func (l *Log) Tail(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
