package datatable

import (
	"net/url"
	"strconv"
	"testing"
)

type person struct {
	ID   int
	Name string
	Dept string
	City string
}

func personColumns() []Column[person] {
	return []Column[person]{
		{ID: "name", Header: "Name", Value: func(p person) string { return p.Name }, Sortable: true},
		{ID: "dept", Header: "Department", Value: func(p person) string { return p.Dept }, Sortable: true},
		{ID: "city", Header: "City", Value: func(p person) string { return p.City }},
	}
}

func personID(p person) string { return strconv.Itoa(p.ID) }

func people() []person {
	return []person{
		{1, "Alice", "methods", "Lagos"},
		{2, "Bola", "field", "Abuja"},
		{3, "Chidi", "methods", "Lagos"},
		{4, "Dayo", "admin", "Ibadan"},
		{5, "Efe", "field", "Lagos"},
	}
}

func personFilterFields() []FilterField[person] {
	return []FilterField[person]{
		{Label: "Name", Value: "name", Placeholder: "Search names..."},
		{Label: "Department", Value: "dept", Options: []Option{
			{Label: "Methods", Value: "methods", WithCount: true},
			{Label: "Field", Value: "field", WithCount: true},
			{Label: "Admin", Value: "admin", WithCount: true},
		}},
		{Label: "City", Value: "city", Options: []Option{
			{Label: "Lagos", Value: "Lagos"},
			{Label: "Abuja", Value: "Abuja"},
			{Label: "Ibadan", Value: "Ibadan"},
		}},
	}
}

func newTable(t *testing.T) *Table[person] {
	t.Helper()
	return New(people(), personColumns(), personID,
		WithFilterFields(personFilterFields()))
}

func TestPartitionFilterFields(t *testing.T) {
	tbl := newTable(t)
	if n := len(tbl.SearchableColumns()); n != 1 {
		t.Fatalf("expected 1 searchable column, got %d", n)
	}
	if n := len(tbl.FilterableColumns()); n != 2 {
		t.Fatalf("expected 2 filterable columns, got %d", n)
	}
}

func TestTextFilter_CaseInsensitiveSubstring(t *testing.T) {
	tbl := newTable(t)
	tbl.SetTextFilter("name", "aL")
	rows := tbl.FilteredRows()
	if len(rows) != 1 || rows[0].Name != "Alice" {
		t.Fatalf("expected only Alice, got %+v", rows)
	}
}

func TestFacetFilter_ORWithinField(t *testing.T) {
	tbl := newTable(t)
	tbl.ToggleFacetValue("dept", "methods")
	tbl.ToggleFacetValue("dept", "admin")
	rows := tbl.FilteredRows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (methods OR admin), got %d", len(rows))
	}
	for _, r := range rows {
		if r.Dept != "methods" && r.Dept != "admin" {
			t.Fatalf("row %q outside selected facets", r.Name)
		}
	}
}

// Two selected values per field, two active fields: a row must satisfy at
// least one value per field, for every field.
func TestFacetFilter_ANDAcrossFields(t *testing.T) {
	tbl := newTable(t)
	tbl.SetFacetValues("dept", []string{"methods", "field"})
	tbl.SetFacetValues("city", []string{"Lagos", "Abuja"})
	rows := tbl.FilteredRows()
	// Dayo (admin/Ibadan) fails both fields; everyone else passes both.
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Name == "Dayo" {
			t.Fatalf("Dayo should fail the cross-field AND")
		}
	}
}

func TestTextAndFacetCombined(t *testing.T) {
	tbl := newTable(t)
	tbl.SetTextFilter("name", "i") // Alice, Chidi
	tbl.ToggleFacetValue("city", "Lagos")
	rows := tbl.FilteredRows()
	if len(rows) != 2 {
		t.Fatalf("expected Alice and Chidi, got %+v", rows)
	}
}

func TestSortCycle(t *testing.T) {
	tbl := newTable(t)

	tbl.CycleSort("name")
	if col, dir := tbl.Sort(); col != "name" || dir != SortAsc {
		t.Fatalf("expected name asc, got %s %d", col, dir)
	}
	tbl.CycleSort("name")
	if _, dir := tbl.Sort(); dir != SortDesc {
		t.Fatalf("expected desc after second click")
	}
	tbl.CycleSort("name")
	if col, dir := tbl.Sort(); col != "" || dir != SortNone {
		t.Fatalf("expected unsorted after third click, got %s %d", col, dir)
	}
}

func TestSortSingleColumnOnly(t *testing.T) {
	tbl := newTable(t)
	tbl.CycleSort("name")
	tbl.CycleSort("dept") // replaces, does not stack
	if col, dir := tbl.Sort(); col != "dept" || dir != SortAsc {
		t.Fatalf("expected dept asc, got %s %d", col, dir)
	}
}

func TestSortOrdering(t *testing.T) {
	tbl := newTable(t)
	tbl.CycleSort("name")
	tbl.CycleSort("name") // desc
	rows := tbl.FilteredRows()
	if rows[0].Name != "Efe" || rows[len(rows)-1].Name != "Alice" {
		t.Fatalf("descending name sort wrong: %+v", rows)
	}
}

func TestSortIgnoresNonSortableColumn(t *testing.T) {
	tbl := newTable(t)
	tbl.CycleSort("city")
	if _, dir := tbl.Sort(); dir != SortNone {
		t.Fatalf("city is not sortable")
	}
}

func TestPagination(t *testing.T) {
	tbl := New(people(), personColumns(), personID,
		WithPageSizeOptions[person]([]int{2, 5}))

	if tbl.PageCount() != 3 {
		t.Fatalf("expected 3 pages of 2, got %d", tbl.PageCount())
	}
	if rows := tbl.PageRows(); len(rows) != 2 {
		t.Fatalf("expected 2 rows on page 0, got %d", len(rows))
	}
	tbl.SetPage(2)
	if rows := tbl.PageRows(); len(rows) != 1 {
		t.Fatalf("expected 1 row on the last page, got %d", len(rows))
	}
	tbl.SetPage(99)
	if rows := tbl.PageRows(); len(rows) != 1 {
		t.Fatalf("page index should clamp to the last page")
	}

	// page size must be one of the configured options
	tbl.SetPageSize(7)
	if tbl.pageSize != 2 {
		t.Fatalf("unknown page size must be ignored")
	}
	tbl.SetPageSize(5)
	if tbl.PageCount() != 1 {
		t.Fatalf("expected a single page of 5")
	}
}

func TestDefaultPageSizeIsFirstOption(t *testing.T) {
	tbl := newTable(t)
	if tbl.pageSize != 10 {
		t.Fatalf("expected default page size 10, got %d", tbl.pageSize)
	}
}

func TestSelection(t *testing.T) {
	tbl := newTable(t)

	tbl.ToggleRow("1")
	tbl.ToggleRow("3")
	if got := tbl.SelectedIDs(); len(got) != 2 {
		t.Fatalf("expected 2 selected, got %v", got)
	}
	tbl.ToggleRow("1")
	if tbl.IsSelected("1") {
		t.Fatalf("toggle should deselect")
	}
}

// Select-all covers rows passing the current filters, not the whole data set,
// and clearing filters afterwards keeps the selection.
func TestSelectAllRespectsFilters(t *testing.T) {
	tbl := newTable(t)
	tbl.ToggleFacetValue("dept", "methods")
	tbl.SelectAll()
	if got := tbl.SelectedIDs(); len(got) != 2 {
		t.Fatalf("expected the 2 filtered rows selected, got %v", got)
	}

	tbl.ClearFilters()
	if got := tbl.SelectedIDs(); len(got) != 2 {
		t.Fatalf("clearing filters must not clear selection, got %v", got)
	}
}

func TestFacetCounts(t *testing.T) {
	tbl := newTable(t)
	counts := tbl.FacetCounts("dept")
	if counts["methods"] != 2 || counts["field"] != 2 || counts["admin"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	// selecting within the same facet must not zero out sibling counts
	tbl.ToggleFacetValue("dept", "methods")
	counts = tbl.FacetCounts("dept")
	if counts["field"] != 2 {
		t.Fatalf("sibling counts should survive own selection: %v", counts)
	}

	// but counts do respect the other fields' filters
	tbl.ToggleFacetValue("city", "Lagos")
	counts = tbl.FacetCounts("dept")
	if counts["admin"] != 0 || counts["methods"] != 2 || counts["field"] != 1 {
		t.Fatalf("counts should apply other filters: %v", counts)
	}
}

func TestRenderEmptyState(t *testing.T) {
	tbl := New([]person{}, personColumns(), personID)
	v := tbl.Render()
	if !v.Empty || v.EmptyMessage != "No results." {
		t.Fatalf("expected empty state with No results., got %+v", v)
	}
	if len(v.Rows) != 0 {
		t.Fatalf("empty state must not carry body rows")
	}
	if len(v.Headers) != 3 {
		t.Fatalf("headers still render over the empty body")
	}
}

func TestRenderFilteredToEmpty(t *testing.T) {
	tbl := newTable(t)
	tbl.SetTextFilter("name", "zzz")
	v := tbl.Render()
	if !v.Empty || v.EmptyMessage != EmptyMessage {
		t.Fatalf("expected empty state when filters match nothing")
	}
	if v.TotalRows != 5 || v.FilteredRows != 0 {
		t.Fatalf("unexpected row counts: %+v", v)
	}
}

func TestRenderColumnVisibility(t *testing.T) {
	tbl := newTable(t)
	tbl.SetColumnVisible("city", false)
	v := tbl.Render()
	if len(v.Headers) != 2 {
		t.Fatalf("expected 2 visible headers, got %d", len(v.Headers))
	}
	for _, row := range v.Rows {
		if len(row.Cells) != 2 {
			t.Fatalf("hidden column leaked into cells")
		}
	}
}

func TestApplyQuery(t *testing.T) {
	tbl := New(people(), personColumns(), personID,
		WithFilterFields(personFilterFields()),
		WithPageSizeOptions[person]([]int{2, 10}))

	params := url.Values{
		"facet[dept]": {"methods,field"},
		"sort":        {"name.desc"},
		"per_page":    {"2"},
		"page":        {"2"},
	}
	tbl.ApplyQuery(params)

	v := tbl.Render()
	if v.FilteredRows != 4 {
		t.Fatalf("expected 4 filtered rows, got %d", v.FilteredRows)
	}
	if v.PageIndex != 1 || v.PageCount != 2 {
		t.Fatalf("unexpected paging: %+v", v)
	}
	if col, dir := tbl.Sort(); col != "name" || dir != SortDesc {
		t.Fatalf("sort param not applied: %s %d", col, dir)
	}
	// page 2 of Efe,Chidi,Bola,Alice by 2 -> Bola, Alice
	if len(v.Rows) != 2 || v.Rows[0].Cells[0] != "Bola" {
		t.Fatalf("unexpected page rows: %+v", v.Rows)
	}
}
