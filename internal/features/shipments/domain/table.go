package domain

// Table is a raw tabular dataset as read from an export file.
// Rows may be ragged; missing trailing cells read as empty.
type Table struct {
	// Headers are the column names as found in the source.
	Headers []string `json:"headers"`
	// Rows holds cell text, one slice per data row.
	Rows [][]string `json:"rows"`
}

// Cell returns the cell at row r, column c, or "" when the row is short.
func (t *Table) Cell(r, c int) string {
	row := t.Rows[r]
	if c >= len(row) {
		return ""
	}
	return row[c]
}

// Column returns every value of column c.
func (t *Table) Column(c int) []string {
	out := make([]string, len(t.Rows))
	for r := range t.Rows {
		out[r] = t.Cell(r, c)
	}
	return out
}
