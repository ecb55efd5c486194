package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const bom = "\uFEFF"

// DefaultMissingTokens lists field texts read as missing values
var DefaultMissingTokens = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null",
}

// Read parses CSV with a header row into a table, every field is kept as text.
// A field matching one of missingTokens, or an empty field, is loaded as missing.
// Records shorter than the header are padded with missing cells,
// a quote inside an unquoted field is kept as text.
func Read(r io.Reader, identifier string, missingTokens []string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], bom)
	ret, err := New(identifier, header...)
	if err != nil {
		return nil, err
	}
	missing := make(map[string]bool, len(missingTokens)+1)
	missing[""] = true
	for _, token := range missingTokens {
		missing[token] = true
	}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, ErrRecordFields{Line: line, Fields: len(record), Header: len(header)}
		}
		row := make(Row, len(header))
		for i, field := range record {
			if missing[field] {
				continue
			}
			row[i] = Text(field)
		}
		ret.Append(row)
	}
	return ret, nil
}

// Write encodes the table as CSV with a header row, missing cells are written as missingValue
func Write(w io.Writer, t *Table, missingValue string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range record {
			cell := row.At(i)
			if !cell.Valid {
				record[i] = missingValue
				continue
			}
			record[i] = cell.Value
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
