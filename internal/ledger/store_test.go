package ledger

import (
	"context"
	"errors"
	"testing"

	"tally/internal/core"
	"tally/internal/report"
	"tally/internal/storage"
)

// recordingSlot captures what the store persists.
type recordingSlot struct {
	saves   int
	last    []core.Record
	initial []core.Record
	loadErr error
}

func (s *recordingSlot) Save(ctx context.Context, records []core.Record) error {
	s.saves++
	s.last = append([]core.Record(nil), records...)
	return nil
}

func (s *recordingSlot) Load(ctx context.Context) ([]core.Record, error) {
	return s.initial, s.loadErr
}

// failingSlot refuses every write, like a full or disabled storage.
type failingSlot struct{ recordingSlot }

func (s *failingSlot) Save(ctx context.Context, records []core.Record) error {
	return errors.New("quota exceeded")
}

func TestAppendInsertsAtFrontAndPersists(t *testing.T) {
	ctx := context.Background()
	slot := &recordingSlot{}
	store := NewStore(slot)

	first, err := store.Append(ctx, "Salary", core.Money{Cents: 350000}, "Income")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	second, err := store.Append(ctx, "Rent", core.Money{Cents: -120000}, "Rent")
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if store.Size() != 2 {
		t.Fatalf("size = %d, want 2", store.Size())
	}
	records := store.Records()
	if records[0].ID != second.ID || records[1].ID != first.ID {
		t.Fatalf("newest record must be first, got ids %d, %d", records[0].ID, records[1].ID)
	}
	if first.Kind != core.Income || second.Kind != core.Expense {
		t.Fatalf("kinds = %s/%s, want income/expense", first.Kind, second.Kind)
	}
	if second.ID <= first.ID {
		t.Fatalf("ids must be strictly increasing: %d then %d", first.ID, second.ID)
	}
	if first.Date.IsZero() {
		t.Fatalf("record date must be set at creation")
	}
	if slot.saves != 2 {
		t.Fatalf("every mutation must persist, got %d saves", slot.saves)
	}
	if len(slot.last) != 2 {
		t.Fatalf("persisted %d records, want 2", len(slot.last))
	}
}

func TestAppendValidationLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	slot := &recordingSlot{}
	store := NewStore(slot)

	cases := []struct {
		name     string
		amount   core.Money
		category string
		want     error
	}{
		{"", core.Money{Cents: 100}, "Food", core.ErrEmptyName},
		{"   ", core.Money{Cents: 100}, "Food", core.ErrEmptyName},
		{"Lunch", core.Money{Cents: 0}, "Food", core.ErrInvalidAmount},
		{"Lunch", core.Money{Cents: 100}, "", core.ErrEmptyCategory},
	}
	for i, tc := range cases {
		_, err := store.Append(ctx, tc.name, tc.amount, tc.category)
		if !errors.Is(err, tc.want) {
			t.Fatalf("case %d: got %v, want %v", i, err, tc.want)
		}
	}
	if store.Size() != 0 {
		t.Fatalf("rejected appends must not grow the store, size = %d", store.Size())
	}
	if slot.saves != 0 {
		t.Fatalf("rejected appends must not persist, got %d saves", slot.saves)
	}
}

func TestAppendSurvivesPersistFailure(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&failingSlot{})

	rec, err := store.Append(ctx, "Salary", core.Money{Cents: 350000}, "Income")
	if err != nil {
		t.Fatalf("append must succeed despite persist failure, got %v", err)
	}
	if rec.ID == 0 || store.Size() != 1 {
		t.Fatalf("in-memory state must stay authoritative, size = %d", store.Size())
	}
}

func TestClearAllPersistsEmptyCollection(t *testing.T) {
	ctx := context.Background()
	slot := &recordingSlot{}
	store := NewStore(slot)

	if _, err := store.Append(ctx, "Salary", core.Money{Cents: 350000}, "Income"); err != nil {
		t.Fatalf("append: %v", err)
	}
	store.ClearAll(ctx)

	if store.Size() != 0 {
		t.Fatalf("size after clear = %d, want 0", store.Size())
	}
	if slot.saves != 2 {
		t.Fatalf("clear must persist, got %d saves", slot.saves)
	}
	if len(slot.last) != 0 {
		t.Fatalf("clear must persist an empty collection, got %d records", len(slot.last))
	}

	totals := report.ComputeTotals(store.Records())
	if totals.Income.Cents != 0 || totals.Expense.Cents != 0 || totals.Balance.Cents != 0 {
		t.Fatalf("totals after clear = %+v, want zeros", totals)
	}
}

func TestLoadSeedsIDCounter(t *testing.T) {
	ctx := context.Background()
	slot := &recordingSlot{initial: []core.Record{
		{ID: 7, Name: "Rent", Amount: core.Money{Cents: -120000}, Category: "Rent", Kind: core.Expense},
		{ID: 3, Name: "Salary", Amount: core.Money{Cents: 350000}, Category: "Income", Kind: core.Income},
	}}
	store := NewStore(slot)
	store.Load(ctx)

	if store.Size() != 2 {
		t.Fatalf("size after load = %d, want 2", store.Size())
	}
	rec, err := store.Append(ctx, "Lunch", core.Money{Cents: -900}, "Food")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if rec.ID != 8 {
		t.Fatalf("id after load = %d, want 8", rec.ID)
	}
}

func TestLoadSelfHealsOnFailure(t *testing.T) {
	ctx := context.Background()
	slot := &recordingSlot{loadErr: errors.New("disk on fire")}
	store := NewStore(slot)
	store.Load(ctx)

	if store.Size() != 0 {
		t.Fatalf("failed load must yield empty ledger, size = %d", store.Size())
	}
	if _, err := store.Append(ctx, "Salary", core.Money{Cents: 350000}, "Income"); err != nil {
		t.Fatalf("store must stay usable after failed load: %v", err)
	}
}

func TestRevisionChangesOnMutation(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&recordingSlot{})

	before := store.Revision()
	if _, err := store.Append(ctx, "Salary", core.Money{Cents: 350000}, "Income"); err != nil {
		t.Fatalf("append: %v", err)
	}
	afterAppend := store.Revision()
	if afterAppend == before {
		t.Fatalf("append must bump revision")
	}
	store.ClearAll(ctx)
	if store.Revision() == afterAppend {
		t.Fatalf("clear must bump revision")
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&recordingSlot{})
	if _, err := store.Append(ctx, "Salary", core.Money{Cents: 350000}, "Income"); err != nil {
		t.Fatalf("append: %v", err)
	}

	records := store.Records()
	records[0].Name = "mutated"
	if store.Records()[0].Name != "Salary" {
		t.Fatalf("Records must hand out a copy")
	}
}

func TestStorageRoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	slot := storage.NewMemorySlot()

	store := NewStore(slot)
	if _, err := store.Append(ctx, "Salary", core.Money{Cents: 350000}, "Income"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := store.Append(ctx, "Rent", core.Money{Cents: -120000}, "Rent"); err != nil {
		t.Fatalf("append: %v", err)
	}
	want := store.Records()

	reloaded := NewStore(slot)
	reloaded.Load(ctx)
	got := reloaded.Records()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name ||
			got[i].Amount != want[i].Amount || got[i].Category != want[i].Category ||
			got[i].Kind != want[i].Kind {
			t.Fatalf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
