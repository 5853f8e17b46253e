package datatable

import "sort"

// CycleSort advances the sort state of a column: unsorted -> ascending ->
// descending -> unsorted. Only one column is sorted at a time; sorting a new
// column replaces the previous sort. Non-sortable columns are ignored.
func (t *Table[T]) CycleSort(columnID string) {
	col := t.column(columnID)
	if col == nil || !col.Sortable {
		return
	}
	if t.sortColumn != columnID {
		t.sortColumn = columnID
		t.sortDirection = SortAsc
		return
	}
	switch t.sortDirection {
	case SortAsc:
		t.sortDirection = SortDesc
	case SortDesc:
		t.sortColumn = ""
		t.sortDirection = SortNone
	default:
		t.sortDirection = SortAsc
	}
}

// Sort reports the current sort column and direction.
func (t *Table[T]) Sort() (string, SortDirection) { return t.sortColumn, t.sortDirection }

// SetTextFilter sets the free-text query for a searchable column. An empty
// query clears the filter. Filtering happens per keystroke on the client, so
// this is called with whatever partial text the user has typed.
func (t *Table[T]) SetTextFilter(columnID, query string) {
	if query == "" {
		delete(t.textFilters, columnID)
		return
	}
	t.textFilters[columnID] = query
	t.pageIndex = 0
}

// ToggleFacetValue adds or removes one selected value of a faceted column.
func (t *Table[T]) ToggleFacetValue(columnID, value string) {
	set := t.facetFilters[columnID]
	if set == nil {
		set = make(map[string]bool)
		t.facetFilters[columnID] = set
	}
	if set[value] {
		delete(set, value)
		if len(set) == 0 {
			delete(t.facetFilters, columnID)
		}
	} else {
		set[value] = true
	}
	t.pageIndex = 0
}

// SetFacetValues replaces the selected value set of a faceted column.
func (t *Table[T]) SetFacetValues(columnID string, values []string) {
	if len(values) == 0 {
		delete(t.facetFilters, columnID)
		return
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	t.facetFilters[columnID] = set
	t.pageIndex = 0
}

// ClearFilters removes every text and facet filter. Row selection is kept:
// clearing filters never clears selection.
func (t *Table[T]) ClearFilters() {
	t.textFilters = make(map[string]string)
	t.facetFilters = make(map[string]map[string]bool)
	t.pageIndex = 0
}

// HasActiveFilters reports whether any text or facet filter is set.
func (t *Table[T]) HasActiveFilters() bool {
	return len(t.textFilters) > 0 || len(t.facetFilters) > 0
}

// SetColumnVisible toggles a column in or out of the rendered view. Hidden
// columns still participate in filtering.
func (t *Table[T]) SetColumnVisible(columnID string, visible bool) {
	if t.column(columnID) != nil {
		t.columnVisibility[columnID] = visible
	}
}

// SetPage moves to a zero-based page index, clamped to the valid range for
// the current filtered row count.
func (t *Table[T]) SetPage(index int) {
	if index < 0 {
		index = 0
	}
	if max := t.PageCount() - 1; index > max {
		index = max
	}
	t.pageIndex = index
}

// SetPageSize switches to one of the configured page size options; values
// outside the configured set are ignored.
func (t *Table[T]) SetPageSize(size int) {
	for _, opt := range t.pageSizeOptions {
		if opt == size {
			t.pageSize = size
			t.pageIndex = 0
			return
		}
	}
}

// ToggleRow flips the selection state of one row id.
func (t *Table[T]) ToggleRow(rowID string) {
	if t.rowSelection[rowID] {
		delete(t.rowSelection, rowID)
	} else {
		t.rowSelection[rowID] = true
	}
}

// SelectAll selects every row currently passing the active filters, not the
// full unfiltered data set.
func (t *Table[T]) SelectAll() {
	for _, row := range t.FilteredRows() {
		t.rowSelection[t.rowID(row)] = true
	}
}

// ClearSelection empties the selection set.
func (t *Table[T]) ClearSelection() {
	t.rowSelection = make(map[string]bool)
}

// SelectedIDs returns the selected row ids in stable order.
func (t *Table[T]) SelectedIDs() []string {
	ids := make([]string, 0, len(t.rowSelection))
	for id := range t.rowSelection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsSelected reports whether a row id is in the selection set.
func (t *Table[T]) IsSelected(rowID string) bool { return t.rowSelection[rowID] }
