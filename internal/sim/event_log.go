package sim

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded simulation event.
type LogEntry struct {
	Tick     int
	Actor    string  // "P", "C17", "F", or "--" for world events
	Category string  // absorb, phase, world, camera
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric payload, e.g. the speed cost of an absorption
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] C17  absorb    creature  C40 → r=11.31
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-9s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// EventLog collects structured events from Game.Step. It is unbounded;
// long-running hosts drain it with Reset after consuming new entries.
type EventLog struct {
	entries []LogEntry
	verbose bool
}

// NewEventLog creates an EventLog. Verbose mode also records pellet
// absorptions, respawn counts and camera follow targets, which are
// produced every tick.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (l *EventLog) Add(tick int, actor, category, key, value string, numVal float64) {
	l.entries = append(l.entries, LogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (l *EventLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !l.verbose {
		return
	}
	l.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (l *EventLog) Entries() []LogEntry {
	return l.entries
}

// Len returns the number of recorded entries.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Reset drops all entries, keeping the backing array.
func (l *EventLog) Reset() {
	l.entries = l.entries[:0]
}

// Filter returns entries matching category and key. Empty strings match anything.
func (l *EventLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns entries recorded for one actor label.
func (l *EventLog) FilterActor(actor string) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if e.Actor == actor {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match category and key.
func (l *EventLog) Count(category, key string) int {
	return len(l.Filter(category, key))
}

// LastOf returns the most recent entry matching category and key.
func (l *EventLog) LastOf(category, key string) (LogEntry, bool) {
	entries := l.Filter(category, key)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether any entry matches category, key and value substring.
func (l *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log, one line per entry.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
