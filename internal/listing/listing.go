// Package listing filters, searches and sorts the in-memory lists the pages
// fetch from the backend.
package listing

import (
	"sort"
	"strings"

	"fuel-console/internal/timeutil"
)

// All is the category value that disables a category filter.
const All = "All"

// Predicate keeps an item when it returns true.
type Predicate[T any] func(T) bool

// Filter returns the items every predicate keeps, in their original order.
// The input slice is not modified.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, keep := range preds {
			if keep != nil && !keep(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// Direction of a sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection reads "desc" (any case) as Desc and anything else as Asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// Key extracts the numeric sort key of an item.
type Key[T any] func(T) float64

// Sort returns a stably sorted copy of items. A nil key keeps the order.
func Sort[T any](items []T, key Key[T], dir Direction) []T {
	out := make([]T, len(items))
	copy(out, items)
	if key == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return key(out[i]) > key(out[j])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}

// Category keeps items whose field equals want exactly. "" and All keep
// everything.
func Category[T any](field func(T) string, want string) Predicate[T] {
	if want == "" || want == All {
		return nil
	}
	return func(item T) bool {
		return field(item) == want
	}
}

// Search keeps items where q occurs, case-insensitively, in the fields
// joined by spaces. An empty q keeps everything.
func Search[T any](fields func(T) []string, q string) Predicate[T] {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	return func(item T) bool {
		return strings.Contains(strings.ToLower(strings.Join(fields(item), " ")), q)
	}
}

// DateRange keeps items whose IST calendar day lies within [from, to],
// comparing YYYY-MM-DD strings. Either bound may be empty. With any bound set, items
// without a date are dropped.
func DateRange[T any](date func(T) string, from, to string) Predicate[T] {
	if from == "" && to == "" {
		return nil
	}
	return func(item T) bool {
		d := timeutil.LocalDate(date(item))
		if d == "" {
			return false
		}
		if from != "" && d < from {
			return false
		}
		if to != "" && d > to {
			return false
		}
		return true
	}
}

// InstantRange keeps items whose timestamp lies between the start of day
// from and the end of day to, in IST. Unreadable bounds are ignored;
// unreadable item timestamps are dropped while any bound applies.
func InstantRange[T any](timestamp func(T) string, from, to string) Predicate[T] {
	start, _, hasFrom := timeutil.DayBounds(from)
	_, end, hasTo := timeutil.DayBounds(to)
	if !hasFrom && !hasTo {
		return nil
	}
	return func(item T) bool {
		at, ok := timeutil.ParseTimestamp(timestamp(item))
		if !ok {
			return false
		}
		if hasFrom && at.Before(start) {
			return false
		}
		if hasTo && at.After(end) {
			return false
		}
		return true
	}
}
