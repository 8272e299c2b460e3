// Package storage persists the full ledger collection to a single
// durable slot as an opaque serialized blob. Durable local storage is
// best-effort by contract: a slot that cannot be read yields an empty
// collection, and a failed write leaves the in-memory ledger as the
// source of truth for the session.
package storage

import (
	"context"

	"tally/internal/core"
)

// Slot is a durable location holding the serialized collection.
//
// Load returns an empty collection when the slot is absent or its
// contents cannot be decoded; it returns an error only for I/O
// failures, which callers degrade to an empty in-memory ledger.
// Save replaces the whole slot contents on every call.
type Slot interface {
	Save(ctx context.Context, records []core.Record) error
	Load(ctx context.Context) ([]core.Record, error)
}
