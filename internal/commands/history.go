package commands

import "slices"

// DefaultHistoryLimit bounds the history ledger unless overridden.
const DefaultHistoryLimit = 50

// History is a bounded, most-recently-used list of executed raw inputs.
// Re-recording an input promotes it to the front rather than duplicating it;
// once the limit is reached the oldest entries are evicted. It is a plain
// MRU list, not a multiset with counts, and it is not persisted anywhere.
type History struct {
	entries []string
	limit   int
}

// NewHistory creates a history ledger bounded to limit entries.
// Non-positive limits fall back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record prepends input, removing any previous occurrence first and evicting
// the oldest entries beyond the limit.
func (h *History) Record(input string) {
	h.entries = slices.DeleteFunc(h.entries, func(e string) bool {
		return e == input
	})
	h.entries = append([]string{input}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// All returns a most-recent-first copy of the recorded inputs.
func (h *History) All() []string {
	return slices.Clone(h.entries)
}

// Clear discards all recorded inputs.
func (h *History) Clear() {
	h.entries = nil
}

// Len returns the number of recorded inputs.
func (h *History) Len() int {
	return len(h.entries)
}
