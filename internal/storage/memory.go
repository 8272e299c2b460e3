package storage

import (
	"context"
	"log/slog"
	"sync"

	"tally/internal/core"
)

// MemorySlot holds the serialized collection in process memory. It runs
// records through the same codec as the durable backends, so tests
// exercise the full round trip.
type MemorySlot struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Save(ctx context.Context, records []core.Record) error {
	blob, err := encodeRecords(records)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = blob
	return nil
}

func (s *MemorySlot) Load(ctx context.Context) ([]core.Record, error) {
	s.mu.Lock()
	blob := s.blob
	s.mu.Unlock()

	if blob == nil {
		return nil, nil
	}
	records, err := decodeRecords(blob)
	if err != nil {
		slog.WarnContext(ctx, "Memory slot is not parseable, starting with empty ledger", "error", err)
		return nil, nil
	}
	return records, nil
}
