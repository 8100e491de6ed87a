package trace

import (
	"strings"
	"sync"
)

// Entry is one recorded trace line.
type Entry struct {
	Level string // "INFO" or "WARN"
	Msg   string
}

// Recorder keeps trace lines in memory. It is meant for tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) TraceInfo(msg string) { r.add("INFO", msg) }
func (r *Recorder) TraceWarn(msg string) { r.add("WARN", msg) }

func (r *Recorder) add(level, msg string) {
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg})
	r.mu.Unlock()
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Contains reports whether any line at level contains substr.
func (r *Recorder) Contains(level, substr string) bool {
	for _, e := range r.Entries() {
		if e.Level == level && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}
