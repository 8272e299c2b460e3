package storage

import (
	"encoding/json"
	"math"
	"time"

	"tally/internal/core"
)

// slotRecord is the wire shape of one persisted record. Amounts are
// stored in currency units to stay compatible with the unversioned
// legacy layout; they convert back to cents on load. There is no
// schema version field, and unknown fields are ignored.
type slotRecord struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	Kind     string    `json:"kind"`
}

func encodeRecords(records []core.Record) ([]byte, error) {
	out := make([]slotRecord, len(records))
	for i, r := range records {
		out[i] = slotRecord{
			ID:       r.ID,
			Name:     r.Name,
			Amount:   r.Amount.Units(),
			Category: r.Category,
			Date:     r.Date,
			Kind:     string(r.Kind),
		}
	}
	return json.Marshal(out)
}

func decodeRecords(blob []byte) ([]core.Record, error) {
	var in []slotRecord
	if err := json.Unmarshal(blob, &in); err != nil {
		return nil, err
	}

	out := make([]core.Record, len(in))
	for i, sr := range in {
		amount := core.Money{Cents: int64(math.Round(sr.Amount * 100))}
		kind := core.Kind(sr.Kind)
		if kind != core.Income && kind != core.Expense {
			// Legacy blobs may omit the kind; re-derive it from the sign.
			kind = core.KindOf(amount)
		}
		out[i] = core.Record{
			ID:       sr.ID,
			Name:     sr.Name,
			Amount:   amount,
			Category: sr.Category,
			Date:     sr.Date,
			Kind:     kind,
		}
	}
	return out, nil
}
