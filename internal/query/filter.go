// Package query derives filtered views of the ledger. Filtering never
// mutates its input and never feeds aggregation: totals and breakdowns
// are always computed from the full collection.
package query

import (
	"strings"

	"tally/internal/core"
)

// Filter returns the records whose name, category, or kind contains
// term, case-insensitively. A term that trims to empty matches
// everything. The result is a fresh slice in the input's order, so
// callers may hold it across store mutations without aliasing the
// canonical list.
func Filter(records []core.Record, term string) []core.Record {
	term = strings.TrimSpace(term)
	if term == "" {
		return append([]core.Record(nil), records...)
	}

	needle := strings.ToLower(term)
	out := make([]core.Record, 0, len(records))
	for _, r := range records {
		if matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r core.Record, needle string) bool {
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Category), needle) ||
		strings.Contains(string(r.Kind), needle)
}
