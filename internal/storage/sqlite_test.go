package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteSlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot, err := NewSQLiteSlot(filepath.Join(t.TempDir(), "data", "tally.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer slot.Close()

	got, err := slot.Load(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("fresh slot: got %v records, err=%v", got, err)
	}

	want := testRecords()
	if err := slot.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = slot.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertRecordsEqual(t, got, want)

	// A second save replaces the slot contents, it does not append.
	if err := slot.Save(ctx, want[:1]); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, err = slot.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertRecordsEqual(t, got, want[:1])
}
