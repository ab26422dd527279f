package attendance

import (
	"slices"
	"strings"
)

// Filter keeps the records matching date AND employeeID. An empty filter
// matches everything; with both empty the input is returned as is.
func Filter(records []Record, date, employeeID string) []Record {
	if date == "" && employeeID == "" {
		return records
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if date != "" && r.Date != date {
			continue
		}
		if employeeID != "" && r.Employee != employeeID {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortByDateDesc returns a copy ordered newest date first. Equal dates keep
// their original relative order. ISO dates compare correctly as strings.
func SortByDateDesc(records []Record) []Record {
	out := slices.Clone(records)
	if out == nil {
		out = []Record{}
	}
	slices.SortStableFunc(out, func(a, b Record) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}
