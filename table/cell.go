package table

// Cell represents a single text value; Valid is false when the value is missing
type Cell struct {
	Value string
	Valid bool
}

// Missing is the cell for an absent value
var Missing = Cell{}

// Text returns a non-missing cell holding value
func Text(value string) Cell {
	return Cell{Value: value, Valid: true}
}

// String returns the cell text, or "<missing>" for a missing cell
func (c Cell) String() string {
	if !c.Valid {
		return "<missing>"
	}
	return c.Value
}

// Row represents table cells aligned with the table columns
type Row []Cell

// At returns the cell at position i, a row shorter than i reads as missing
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Missing
	}
	return r[i]
}
