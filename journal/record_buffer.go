package journal

import (
	"log/slog"
	"sync"
)

// recordBuffer keeps the newest records of a session in a fixed-size ring.
// Handlers derived with WithAttrs/WithGroup share it, so access is locked.
type recordBuffer struct {
	mu      sync.RWMutex
	records []slog.Record
	next    int
	total   int
}

func newRecordBuffer(capacity int) *recordBuffer {
	if capacity <= 0 {
		panic("journal capacity must be greater than 0")
	}
	return &recordBuffer{
		records: make([]slog.Record, 0, capacity),
	}
}

// add stores a record, replacing the oldest one when the ring is full.
func (b *recordBuffer) add(record slog.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.total++
	if len(b.records) < cap(b.records) {
		b.records = append(b.records, record)
		return
	}
	b.records[b.next] = record
	b.next = (b.next + 1) % len(b.records)
}

// snapshot returns the retained records oldest first and the number of
// records that were replaced.
func (b *recordBuffer) snapshot() (records []slog.Record, dropped int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	records = make([]slog.Record, 0, len(b.records))
	records = append(records, b.records[b.next:]...)
	records = append(records, b.records[:b.next]...)
	return records, b.total - len(b.records)
}

func (b *recordBuffer) size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records)
}
