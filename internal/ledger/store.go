// Package ledger owns the canonical in-memory transaction list. Every
// mutation persists the full collection through a storage slot; the
// derived views (filtering, aggregation) only ever read copies of it.
package ledger

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tally/internal/core"
	"tally/internal/storage"
)

// Store is the single owner of the record collection, newest record
// first. Persistence is best-effort: a failed save is logged and the
// session continues in memory.
type Store struct {
	mu       sync.Mutex
	slot     storage.Slot
	records  []core.Record
	nextID   int64
	revision int64
	now      func() time.Time
}

func NewStore(slot storage.Slot) *Store {
	return &Store{
		slot:   slot,
		nextID: 1,
		now:    time.Now,
	}
}

// Load replaces the in-memory collection with the slot's contents.
// Called once at startup. Any failure self-heals to an empty ledger
// rather than propagating; the id counter continues past the highest
// loaded id so ids stay strictly increasing across restarts.
func (s *Store) Load(ctx context.Context) {
	records, err := s.slot.Load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Loading ledger failed, starting with empty ledger", "error", err)
		records = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.nextID = maxID(records) + 1
	s.revision++

	slog.InfoContext(ctx, "Ledger loaded", "records", len(records), "next_id", s.nextID)
}

// Append validates and inserts a new record at the front of the
// collection, then persists. The store is untouched when validation
// fails. The returned record carries the assigned id,
// creation timestamp, and derived kind.
func (s *Store) Append(ctx context.Context, name string, amount core.Money, category string) (core.Record, error) {
	rec := core.Record{
		Name:     strings.TrimSpace(name),
		Amount:   amount,
		Category: strings.TrimSpace(category),
		Date:     s.now(),
		Kind:     core.KindOf(amount),
	}
	if err := rec.Validate(); err != nil {
		return core.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.nextID
	s.nextID++
	s.records = append([]core.Record{rec}, s.records...)
	s.revision++
	s.persist(ctx)

	slog.InfoContext(ctx, "Record appended",
		"id", rec.ID,
		"name", rec.Name,
		"amount_cents", rec.Amount.Cents,
		"category", rec.Category,
		"kind", rec.Kind)

	return rec, nil
}

// ClearAll empties the collection and persists the empty state. The
// slot keeps existing with an empty collection in it.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := len(s.records)
	s.records = nil
	s.revision++
	s.persist(ctx)

	slog.InfoContext(ctx, "Ledger cleared", "records_removed", cleared)
}

// Records returns a copy of the full collection, newest first. Callers
// may hold the copy across mutations.
func (s *Store) Records() []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Record(nil), s.records...)
}

func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Revision increases on every mutation; derived-state consumers use it
// to tell whether a cached computation still reflects the store.
func (s *Store) Revision() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// persist writes the collection through the slot. Failures are logged
// and swallowed: durable storage is best-effort and the in-memory
// state stays authoritative for the session. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if err := s.slot.Save(ctx, s.records); err != nil {
		slog.ErrorContext(ctx, "Persisting ledger failed, continuing in memory",
			"error", err, "records", len(s.records))
	}
}

func maxID(records []core.Record) int64 {
	var max int64
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max
}
