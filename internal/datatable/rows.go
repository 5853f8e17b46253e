package datatable

import (
	"sort"
	"strings"
)

// matches reports whether a row passes every active filter: text filters use
// case-insensitive substring containment, facet filters use set membership.
// Multiple selected values of one facet are OR; distinct filter fields are
// AND.
func (t *Table[T]) matches(row T) bool {
	for columnID, query := range t.textFilters {
		col := t.column(columnID)
		if col == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(col.Value(row)), strings.ToLower(query)) {
			return false
		}
	}
	for columnID, selected := range t.facetFilters {
		col := t.column(columnID)
		if col == nil {
			continue
		}
		if !selected[col.Value(row)] {
			return false
		}
	}
	return true
}

// FilteredRows returns the rows passing all active filters, sorted by the
// current sort state. The underlying data slice is never reordered.
func (t *Table[T]) FilteredRows() []T {
	rows := make([]T, 0, len(t.data))
	for _, row := range t.data {
		if t.matches(row) {
			rows = append(rows, row)
		}
	}

	if t.sortDirection != SortNone {
		if col := t.column(t.sortColumn); col != nil {
			desc := t.sortDirection == SortDesc
			sort.SliceStable(rows, func(i, j int) bool {
				less := col.Value(rows[i]) < col.Value(rows[j])
				if desc {
					return !less && col.Value(rows[i]) != col.Value(rows[j])
				}
				return less
			})
		}
	}
	return rows
}

// PageCount is the number of pages over the filtered rows, never less than 1.
func (t *Table[T]) PageCount() int {
	n := len(t.FilteredRows())
	if n == 0 {
		return 1
	}
	return (n + t.pageSize - 1) / t.pageSize
}

// PageRows returns the filtered, sorted rows of the current page.
func (t *Table[T]) PageRows() []T {
	rows := t.FilteredRows()
	start := t.pageIndex * t.pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + t.pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// FacetCounts returns, for one faceted column, how many rows carry each
// option value. Counts are computed against rows passing every other
// filter, so selecting a value does not zero out its siblings.
func (t *Table[T]) FacetCounts(columnID string) map[string]int {
	col := t.column(columnID)
	if col == nil {
		return nil
	}

	saved, had := t.facetFilters[columnID], false
	if _, ok := t.facetFilters[columnID]; ok {
		had = true
		delete(t.facetFilters, columnID)
	}

	counts := make(map[string]int)
	for _, row := range t.data {
		if t.matches(row) {
			counts[col.Value(row)]++
		}
	}

	if had {
		t.facetFilters[columnID] = saved
	}
	return counts
}
