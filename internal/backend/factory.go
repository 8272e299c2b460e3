package backend

import (
	"fmt"
	"log/slog"

	"tally/internal/storage"
)

// Open creates the configured storage slot. The returned cleanup is nil
// for backends without resources to release.
func Open(logger *slog.Logger, cfg Config) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case FileBackend:
		slot := storage.NewFileSlot(cfg.StorePath)
		logger.Info("Initialized file backend", "path", cfg.StorePath)
		return &Result{Slot: slot}, nil

	case SQLiteBackend:
		slot, err := storage.NewSQLiteSlot(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite slot: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Slot: slot, Cleanup: slot.Close}, nil

	case MemoryBackend:
		logger.Info("Initialized memory backend")
		return &Result{Slot: storage.NewMemorySlot()}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
