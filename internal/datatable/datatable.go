// Package datatable is a reusable table abstraction shared by every admin
// list view: sorting, text and faceted filtering, column visibility,
// client-style pagination and row selection over an in-memory row set. The
// table never fetches data; callers supply rows already loaded by the query
// layer.
package datatable

// EmptyMessage is rendered as a single row spanning all columns when no rows
// pass the active filters.
const EmptyMessage = "No results."

// DefaultPageSizeOptions is used when a table does not configure its own.
var DefaultPageSizeOptions = []int{10, 20, 30, 40, 50}

// Column defines one table column: a stable id, a header label and how to
// resolve a row into the displayed (and filtered/sorted) string value.
type Column[T any] struct {
	ID       string
	Header   string
	Value    func(T) string
	Sortable bool
	Hidden   bool // initial visibility
}

// Option is one selectable value of a faceted filter.
type Option struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Icon      string `json:"icon,omitempty"`
	WithCount bool   `json:"with_count,omitempty"`
}

// FilterField declares, per column, whether it is free-text searchable (no
// Options) or faceted (Options present). Created once per table definition
// and never modified.
type FilterField[T any] struct {
	Label       string
	Value       string // column id
	Placeholder string
	Options     []Option
}

// SortDirection cycles unsorted -> ascending -> descending -> unsorted.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// Table holds the full interactive state of one admin data table. A table
// instance owns its state exclusively; it is not safe for concurrent use and
// is built fresh per render.
type Table[T any] struct {
	data    []T
	columns []Column[T]
	rowID   func(T) string

	searchableColumns []FilterField[T]
	filterableColumns []FilterField[T]

	sortColumn    string
	sortDirection SortDirection

	textFilters  map[string]string
	facetFilters map[string]map[string]bool

	columnVisibility map[string]bool
	rowSelection     map[string]bool

	pageIndex       int
	pageSize        int
	pageSizeOptions []int
}

// TableOption configures a table at construction time.
type TableOption[T any] func(*Table[T])

// WithFilterFields declares the searchable and faceted columns. Fields with
// no Options become free-text filters; fields with Options become
// multi-select facet filters.
func WithFilterFields[T any](fields []FilterField[T]) TableOption[T] {
	return func(t *Table[T]) {
		for _, f := range fields {
			if len(f.Options) == 0 {
				t.searchableColumns = append(t.searchableColumns, f)
			} else {
				t.filterableColumns = append(t.filterableColumns, f)
			}
		}
	}
}

// WithPageSizeOptions overrides the selectable page sizes. The first option
// is the default page size.
func WithPageSizeOptions[T any](sizes []int) TableOption[T] {
	return func(t *Table[T]) {
		if len(sizes) > 0 {
			t.pageSizeOptions = sizes
		}
	}
}

// New builds a table over the supplied rows. rowID must return a stable
// unique identifier per row; selection is tracked by it, independent of
// display order.
func New[T any](data []T, columns []Column[T], rowID func(T) string, opts ...TableOption[T]) *Table[T] {
	t := &Table[T]{
		data:             data,
		columns:          columns,
		rowID:            rowID,
		textFilters:      make(map[string]string),
		facetFilters:     make(map[string]map[string]bool),
		columnVisibility: make(map[string]bool),
		rowSelection:     make(map[string]bool),
		pageSizeOptions:  DefaultPageSizeOptions,
	}
	for _, c := range columns {
		t.columnVisibility[c.ID] = !c.Hidden
	}
	for _, opt := range opts {
		opt(t)
	}
	t.pageSize = t.pageSizeOptions[0]
	return t
}

// SearchableColumns returns the free-text filter declarations.
func (t *Table[T]) SearchableColumns() []FilterField[T] { return t.searchableColumns }

// FilterableColumns returns the faceted filter declarations.
func (t *Table[T]) FilterableColumns() []FilterField[T] { return t.filterableColumns }

func (t *Table[T]) column(id string) *Column[T] {
	for i := range t.columns {
		if t.columns[i].ID == id {
			return &t.columns[i]
		}
	}
	return nil
}
