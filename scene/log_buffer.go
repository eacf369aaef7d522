package scene

import "github.com/lixenwraith/zbuffer/core"

// LogBuffer keeps the most recent log entries, evicting the oldest first
type LogBuffer struct {
	entries []core.LogEntry
	limit   int
}

// NewLogBuffer creates a buffer holding at most limit entries
func NewLogBuffer(limit int) *LogBuffer {
	limit = max(limit, 1)
	return &LogBuffer{
		entries: make([]core.LogEntry, 0, limit),
		limit:   limit,
	}
}

// Push appends entries in order, evicting from the front when full
func (b *LogBuffer) Push(entries ...core.LogEntry) {
	for _, e := range entries {
		if len(b.entries) == b.limit {
			copy(b.entries, b.entries[1:])
			b.entries = b.entries[:b.limit-1]
		}
		b.entries = append(b.entries, e)
	}
}

// Len returns the number of entries held
func (b *LogBuffer) Len() int {
	return len(b.entries)
}

// Limit returns the capacity
func (b *LogBuffer) Limit() int {
	return b.limit
}

// Recent returns up to n entries, newest first
func (b *LogBuffer) Recent(n int) []core.LogEntry {
	n = max(0, min(n, len(b.entries)))
	out := make([]core.LogEntry, n)
	for i := 0; i < n; i++ {
		out[i] = b.entries[len(b.entries)-1-i]
	}
	return out
}
