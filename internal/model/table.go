package model

// ColumnType tells the portal frontend how to format a column's cells.
type ColumnType string

const (
	ColumnText       ColumnType = "text"
	ColumnInteger    ColumnType = "integer"
	ColumnNumber     ColumnType = "number"
	ColumnCurrency   ColumnType = "currency"
	ColumnPercentage ColumnType = "percentage"
)

// Column describes one table column.
type Column struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Type  ColumnType `json:"type"`
}

// StyleRule asks the frontend to style cells. When Op is one of "lt",
// "gt", "lte", "gte" the rule applies where the Column cell's numeric
// value compares against Threshold; with an empty Op it applies
// unconditionally to every matching row. RowLabel matches the row's first
// text cell.
type StyleRule struct {
	RowLabel   string  `json:"row_label"`
	Column     string  `json:"column,omitempty"`
	Op         string  `json:"op,omitempty"`
	Threshold  float64 `json:"threshold,omitempty"`
	Color      string  `json:"color,omitempty"`
	Bold       bool    `json:"bold,omitempty"`
	Background string  `json:"background,omitempty"`
}

// Table is the wire shape every report endpoint returns. Rows are keyed
// by Column.Key; a table with no Rows is a valid empty result, never an
// error.
type Table struct {
	Title   string           `json:"title"`
	Columns []Column         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
	Styles  []StyleRule      `json:"styles,omitempty"`
}
