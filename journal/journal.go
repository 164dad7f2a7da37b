// Package journal keeps the most recent log records of a single test so they
// can be written next to the trace archive when the test fails.
package journal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
)

// DefaultCapacity is the number of records kept when no capacity is given.
const DefaultCapacity = 500

// Journal is a bounded in-memory log of slog records.
type Journal struct {
	buffer *recordBuffer
}

// New creates a journal keeping at most capacity records.
// A capacity of 0 uses DefaultCapacity.
func New(capacity uint64) *Journal {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	return &Journal{
		buffer: newRecordBuffer(int(capacity)),
	}
}

func (j *Journal) collect(record slog.Record) {
	j.buffer.add(record)
}

// Records returns all retained records, oldest first.
func (j *Journal) Records() []slog.Record {
	records, _ := j.buffer.snapshot()
	return records
}

// Dropped returns how many records were replaced by newer ones.
func (j *Journal) Dropped() int {
	_, dropped := j.buffer.snapshot()
	return dropped
}

// Len returns the number of retained records.
func (j *Journal) Len() int {
	return j.buffer.size()
}

// Dump writes all retained records in slog text format.
func (j *Journal) Dump(w io.Writer) error {
	records, dropped := j.buffer.snapshot()
	if dropped > 0 {
		if _, err := fmt.Fprintf(w, "# %d earlier records dropped\n", dropped); err != nil {
			return err
		}
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	for _, record := range records {
		if err := h.Handle(context.Background(), record); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile dumps the journal to path, creating parent directories.
func (j *Journal) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating journal directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating journal file: %w", err)
	}
	if err := j.Dump(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing journal: %w", err)
	}
	return f.Close()
}

// Handler returns a slog.Handler that records into the journal.
func (j *Journal) Handler(level slog.Leveler) slog.Handler {
	return &Handler{
		journal: j,
		level:   level,

		attrs:  []slog.Attr{},
		groups: []string{},
	}
}

// Handler is a slog.Handler collecting records into a Journal.
type Handler struct {
	journal *Journal
	level   slog.Leveler

	attrs  []slog.Attr
	groups []string
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.level.Level() <= level
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	// Handler attributes must come before the record attributes, so the record is rebuilt.
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	newRecord.AddAttrs(h.attrs...)

	attrs := []slog.Attr{}
	record.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)
		return true
	})

	for i := range h.groups {
		k := h.groups[len(h.groups)-1-i]
		attrs = []slog.Attr{
			slog.Group(k, lo.ToAnySlice(attrs)...),
		}
	}
	newRecord.AddAttrs(attrs...)

	h.journal.collect(newRecord)

	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		journal: h.journal,
		level:   h.level,

		attrs:  appendAttrsToGroup(h.groups, h.attrs, attrs...),
		groups: h.groups,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &Handler{
		journal: h.journal,
		level:   h.level,

		attrs:  h.attrs,
		groups: append(slices.Clone(h.groups), name),
	}
}

// Copied from github.com/samber/slog-mock
func appendAttrsToGroup(groups []string, actualAttrs []slog.Attr, newAttrs ...slog.Attr) []slog.Attr {
	actualAttrs = slices.Clone(actualAttrs)

	if len(groups) == 0 {
		return append(actualAttrs, newAttrs...)
	}

	for i := range actualAttrs {
		attr := actualAttrs[i]
		if attr.Key == groups[0] && attr.Value.Kind() == slog.KindGroup {
			actualAttrs[i] = slog.Group(groups[0], lo.ToAnySlice(appendAttrsToGroup(groups[1:], attr.Value.Group(), newAttrs...))...)
			return actualAttrs
		}
	}

	return append(
		actualAttrs,
		slog.Group(
			groups[0],
			lo.ToAnySlice(appendAttrsToGroup(groups[1:], []slog.Attr{}, newAttrs...))...,
		),
	)
}
