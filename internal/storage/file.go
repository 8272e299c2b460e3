package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tally/internal/core"
)

// FileSlot keeps the serialized collection in a single JSON file on
// disk, the closest analog of a browser's local storage slot.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Save serializes the full collection and replaces the slot file.
func (s *FileSlot) Save(ctx context.Context, records []core.Record) error {
	blob, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create slot directory: %w", err)
	}
	if err := os.WriteFile(s.path, blob, 0644); err != nil {
		return fmt.Errorf("write slot file: %w", err)
	}
	return nil
}

// Load reads the slot file. An absent file is an empty collection, and
// so is a file that no longer parses: a corrupt slot self-heals instead
// of blocking startup.
func (s *FileSlot) Load(ctx context.Context) ([]core.Record, error) {
	blob, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot file: %w", err)
	}

	records, err := decodeRecords(blob)
	if err != nil {
		slog.WarnContext(ctx, "Slot file is not parseable, starting with empty ledger",
			"path", s.path, "error", err)
		return nil, nil
	}
	return records, nil
}
