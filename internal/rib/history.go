package rib

import (
	"slices"
	"time"
)

// defaultHistorySize bounds the RIB event log.
const defaultHistorySize = 256

// HistoryEntry records one applied event.
type HistoryEntry struct {
	Time    time.Time
	Type    string
	Summary string

	// Err is the rejection reason; empty when the event was applied.
	Err string

	// Affected is the number of prefixes whose selection was recomputed.
	Affected int
}

// history is a fixed-size ring of recent events.
type history struct {
	entries []HistoryEntry
	next    int
	full    bool
}

func newHistory(size int) *history {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &history{entries: make([]HistoryEntry, size)}
}

func (h *history) add(e HistoryEntry) {
	h.entries[h.next] = e
	h.next = (h.next + 1) % len(h.entries)
	if h.next == 0 {
		h.full = true
	}
}

// list returns entries oldest first.
func (h *history) list() []HistoryEntry {
	if !h.full {
		return slices.Clone(h.entries[:h.next])
	}
	out := make([]HistoryEntry, 0, len(h.entries))
	out = append(out, h.entries[h.next:]...)
	return append(out, h.entries[:h.next]...)
}
