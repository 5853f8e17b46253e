package datatable

import (
	"net/url"
	"strconv"
	"strings"
)

// HeaderCell is one rendered column header with its sort indicator.
type HeaderCell struct {
	ID       string `json:"id"`
	Header   string `json:"header"`
	Sortable bool   `json:"sortable"`
	Sorted   string `json:"sorted,omitempty"` // "asc" or "desc" when this column drives the sort
}

// RowView is one rendered row: its id, selection state and visible cells.
type RowView struct {
	ID       string   `json:"id"`
	Selected bool     `json:"selected"`
	Cells    []string `json:"cells"`
}

// View is the fully computed render state of a table: what a client paints
// without any further logic.
type View struct {
	Headers      []HeaderCell `json:"headers"`
	Rows         []RowView    `json:"rows"`
	Empty        bool         `json:"empty"`
	EmptyMessage string       `json:"empty_message,omitempty"`
	PageIndex    int          `json:"page_index"`
	PageSize     int          `json:"page_size"`
	PageCount    int          `json:"page_count"`
	FilteredRows int          `json:"filtered_rows"`
	TotalRows    int          `json:"total_rows"`
	SelectedRows int          `json:"selected_rows"`
}

// Render computes the view for the current state. When zero rows pass the
// filters the view carries a single empty-state message spanning all columns
// instead of a body.
func (t *Table[T]) Render() View {
	v := View{
		PageIndex:    t.pageIndex,
		PageSize:     t.pageSize,
		PageCount:    t.PageCount(),
		FilteredRows: len(t.FilteredRows()),
		TotalRows:    len(t.data),
		SelectedRows: len(t.rowSelection),
	}

	var visible []Column[T]
	for _, col := range t.columns {
		if !t.columnVisibility[col.ID] {
			continue
		}
		visible = append(visible, col)
		h := HeaderCell{ID: col.ID, Header: col.Header, Sortable: col.Sortable}
		if col.ID == t.sortColumn {
			switch t.sortDirection {
			case SortAsc:
				h.Sorted = "asc"
			case SortDesc:
				h.Sorted = "desc"
			}
		}
		v.Headers = append(v.Headers, h)
	}

	rows := t.PageRows()
	if v.FilteredRows == 0 {
		v.Empty = true
		v.EmptyMessage = EmptyMessage
		return v
	}
	for _, row := range rows {
		rv := RowView{ID: t.rowID(row), Selected: t.rowSelection[t.rowID(row)]}
		for _, col := range visible {
			rv.Cells = append(rv.Cells, col.Value(row))
		}
		v.Rows = append(v.Rows, rv)
	}
	return v
}

// ApplyQuery maps table query parameters onto the state, used by the admin
// table endpoints:
//
//	sort=name.desc  filter[name]=jo  facet[type]=a,b  page=2  per_page=20
//	hide=email,orcid
//
// page is 1-based on the wire, zero-based internally.
func (t *Table[T]) ApplyQuery(params url.Values) {
	for key, vals := range params {
		if len(vals) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]"):
			t.SetTextFilter(key[len("filter["):len(key)-1], vals[0])
		case strings.HasPrefix(key, "facet[") && strings.HasSuffix(key, "]"):
			t.SetFacetValues(key[len("facet["):len(key)-1], strings.Split(vals[0], ","))
		}
	}

	if raw := params.Get("sort"); raw != "" {
		columnID, dir := raw, "asc"
		if i := strings.LastIndex(raw, "."); i > 0 {
			columnID, dir = raw[:i], raw[i+1:]
		}
		if col := t.column(columnID); col != nil && col.Sortable {
			t.sortColumn = columnID
			if dir == "desc" {
				t.sortDirection = SortDesc
			} else {
				t.sortDirection = SortAsc
			}
		}
	}

	if raw := params.Get("hide"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			t.SetColumnVisible(strings.TrimSpace(id), false)
		}
	}

	if raw := params.Get("per_page"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			t.SetPageSize(size)
		}
	}
	if raw := params.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			t.SetPage(page - 1)
		}
	}
}
