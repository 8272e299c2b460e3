package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tally/internal/core"

	_ "modernc.org/sqlite"
)

const slotName = "ledger"

// SQLiteSlot stores the serialized collection as a single row in a
// key-value table. The blob stays opaque to SQL: the database provides
// durability, not structure.
type SQLiteSlot struct {
	db *sql.DB
}

func NewSQLiteSlot(dbPath string) (*SQLiteSlot, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteSlot{db: db}, nil
}

func (s *SQLiteSlot) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save upserts the full collection into the slot row.
func (s *SQLiteSlot) Save(ctx context.Context, records []core.Record) error {
	blob, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ledger_slot (name, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = CURRENT_TIMESTAMP`,
		slotName, blob)
	if err != nil {
		return fmt.Errorf("write slot row: %w", err)
	}
	return nil
}

// Load reads the slot row; a missing row or an undecodable payload
// yields an empty collection.
func (s *SQLiteSlot) Load(ctx context.Context) ([]core.Record, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM ledger_slot WHERE name = ?`, slotName).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot row: %w", err)
	}

	records, err := decodeRecords(blob)
	if err != nil {
		slog.WarnContext(ctx, "Slot payload is not parseable, starting with empty ledger",
			"slot", slotName, "error", err)
		return nil, nil
	}
	return records, nil
}
