package analytics

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField names the key items are ordered by
type SortField string

const (
	SortByName         SortField = "name"
	SortByCount        SortField = "count"
	SortByYear         SortField = "year"
	SortByCompanyCount SortField = "companyCount"
)

// SortOrder is the direction of the primary key
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortKeys are the comparable attributes of one item. Items that do not
// carry a year or a company count leave them zero.
type SortKeys struct {
	ID           string
	Name         string
	Count        int
	Year         int
	CompanyCount int
}

// Sort returns a sorted copy of items; the input is left untouched.
// Ties on the primary key are broken by ID ascending and then by name, so
// the order is total and paging is deterministic.
func Sort[T any](items []T, keyOf func(*T) SortKeys, by SortField, order SortOrder) []T {
	if len(items) == 0 {
		return []T{}
	}

	type entry struct {
		keys SortKeys
		idx  int
	}
	entries := make([]entry, len(items))
	for i := range items {
		entries[i] = entry{keys: keyOf(&items[i]), idx: i}
	}

	// collators keep internal buffers, one per call
	col := collate.New(language.Und)

	slices.SortFunc(entries, func(a, b entry) int {
		c := comparePrimary(col, a.keys, b.keys, by)
		if order == SortDesc {
			c = -c
		}
		if c != 0 {
			return c
		}
		if c = strings.Compare(a.keys.ID, b.keys.ID); c != 0 {
			return c
		}
		return strings.Compare(a.keys.Name, b.keys.Name)
	})

	out := make([]T, len(items))
	for i, e := range entries {
		out[i] = items[e.idx]
	}
	return out
}

func comparePrimary(col *collate.Collator, a, b SortKeys, by SortField) int {
	switch by {
	case SortByName:
		return col.CompareString(a.Name, b.Name)
	case SortByYear:
		return cmp.Compare(a.Year, b.Year)
	case SortByCompanyCount:
		return cmp.Compare(a.CompanyCount, b.CompanyCount)
	default:
		return cmp.Compare(a.Count, b.Count)
	}
}
