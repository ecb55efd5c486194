package table

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when an input has no header row
	ErrEmpty = errors.New("no header row")
	// ErrDuplicateColumn is returned when a header names the same column twice
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrNoIdentifier is returned when a header lacks the identifier column
	ErrNoIdentifier = errors.New("identifier column not found")
)

// ErrRecordFields is returned by Read when a record
// has more fields than the header declares.
type ErrRecordFields struct {
	Line   int
	Fields int
	Header int
}

func (e ErrRecordFields) Error() string {
	return fmt.Sprintf("record on line %d has %d fields, header has %d", e.Line, e.Fields, e.Header)
}
