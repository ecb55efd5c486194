package table

import (
	"fmt"
)

// Table represents an all-text table keyed by an identifier column
type Table struct {
	Identifier string   // Identifier column name
	Columns    []string // Column names, header order
	Rows       []Row    // Rows aligned with Columns
	index      map[string]int
}

// New creates an empty table, columns must be unique and include the identifier
func New(identifier string, columns ...string) (*Table, error) {
	if identifier == "" {
		return nil, fmt.Errorf("identifier column was empty")
	}
	t := &Table{Identifier: identifier, index: make(map[string]int, len(columns))}
	for _, column := range columns {
		if _, ok := t.index[column]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, column)
		}
		t.index[column] = len(t.Columns)
		t.Columns = append(t.Columns, column)
	}
	if _, ok := t.index[identifier]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoIdentifier, identifier)
	}
	return t, nil
}

// Index returns column position
func (t *Table) Index(column string) (int, bool) {
	if t.index == nil {
		t.indexColumns()
	}
	i, ok := t.index[column]
	return i, ok
}

// AddColumn appends a column unless it already exists and returns its position
func (t *Table) AddColumn(column string) int {
	if i, ok := t.Index(column); ok {
		return i
	}
	t.index[column] = len(t.Columns)
	t.Columns = append(t.Columns, column)
	return len(t.Columns) - 1
}

// Append adds a row
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Len returns row count
func (t *Table) Len() int {
	return len(t.Rows)
}

// Key returns identifier cell of the i-th row
func (t *Table) Key(i int) Cell {
	pos, _ := t.Index(t.Identifier)
	return t.Rows[i].At(pos)
}

// Value returns the cell of the first row with the supplied identifier value
func (t *Table) Value(id, column string) (Cell, bool) {
	pos, ok := t.Index(column)
	if !ok {
		return Missing, false
	}
	for i, row := range t.Rows {
		if key := t.Key(i); key.Valid && key.Value == id {
			return row.At(pos), true
		}
	}
	return Missing, false
}

// Record returns the i-th row as a column name to cell map
func (t *Table) Record(i int) map[string]Cell {
	result := make(map[string]Cell, len(t.Columns))
	for j, column := range t.Columns {
		result[column] = t.Rows[i].At(j)
	}
	return result
}

func (t *Table) indexColumns() {
	t.index = make(map[string]int, len(t.Columns))
	for i, column := range t.Columns {
		t.index[column] = i
	}
}
