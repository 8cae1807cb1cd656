package issue

import (
	"cmp"
	"slices"
	"strings"
)

// Counts summarizes how records split by status.
type Counts struct {
	Total  int `json:"total"`
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

// Partition splits issues into open and closed, preserving input order.
// Issues with any other status are in neither result.
func Partition(issues []*Issue) (open, closed []*Issue) {
	for _, rec := range issues {
		switch {
		case rec.IsOpen():
			open = append(open, rec)
		case rec.IsClosed():
			closed = append(closed, rec)
		}
	}
	return open, closed
}

// SortOpen orders issues by priority ascending, then title ascending.
// The sort is stable.
func SortOpen(issues []*Issue) {
	slices.SortStableFunc(issues, func(a, b *Issue) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return strings.Compare(a.Title, b.Title)
	})
}

// SortClosed orders issues by closed_at descending, comparing the raw
// strings. Missing dates compare as "" and so sort last. The sort is stable.
func SortClosed(issues []*Issue) {
	slices.SortStableFunc(issues, func(a, b *Issue) int {
		return strings.Compare(b.ClosedAt, a.ClosedAt)
	})
}

// CountByStatus returns total, open and closed counts.
func CountByStatus(issues []*Issue) Counts {
	counts := Counts{Total: len(issues)}
	for _, rec := range issues {
		switch {
		case rec.IsOpen():
			counts.Open++
		case rec.IsClosed():
			counts.Closed++
		}
	}
	return counts
}

// CountByPriority counts issues per priority value.
func CountByPriority(issues []*Issue) map[int]int {
	counts := make(map[int]int)
	for _, rec := range issues {
		counts[rec.Priority]++
	}
	return counts
}
