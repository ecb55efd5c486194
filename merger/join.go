package merger

import (
	"fmt"

	"github.com/viant/csvmerge/table"
)

// Groups represents a full outer join result with rows grouped by identifier value.
// Member rows keep join order: left rows first, then right rows in file order.
type Groups struct {
	Identifier string
	Columns    []string               // identifier first, then the column union in first appearance order
	Keys       []string               // identifier values in first appearance order
	Rows       map[string][]table.Row // member rows aligned with Columns
	Dropped    int                    // rows without identifier value
	index      map[string]int
}

// NewGroups creates empty groups for identifier
func NewGroups(identifier string) *Groups {
	return &Groups{
		Identifier: identifier,
		Columns:    []string{identifier},
		Rows:       map[string][]table.Row{},
		index:      map[string]int{identifier: 0},
	}
}

func (g *Groups) addColumns(t *table.Table) ([]int, error) {
	if t.Identifier != g.Identifier {
		return nil, fmt.Errorf("identifier mismatch: %q vs %q", t.Identifier, g.Identifier)
	}
	if _, ok := t.Index(g.Identifier); !ok {
		return nil, fmt.Errorf("%w: %q", table.ErrNoIdentifier, g.Identifier)
	}
	positions := make([]int, len(t.Columns))
	for i, column := range t.Columns {
		positions[i] = g.addColumn(column)
	}
	return positions, nil
}

func (g *Groups) addRows(t *table.Table, positions []int) {
	keyPos, _ := t.Index(g.Identifier)
	for _, row := range t.Rows {
		key := row.At(keyPos)
		if !key.Valid {
			g.Dropped++
			continue
		}
		aligned := make(table.Row, len(g.Columns))
		for i, pos := range positions {
			aligned[pos] = row.At(i)
		}
		if _, ok := g.Rows[key.Value]; !ok {
			g.Keys = append(g.Keys, key.Value)
		}
		g.Rows[key.Value] = append(g.Rows[key.Value], aligned)
	}
}

// Len returns distinct identifier count
func (g *Groups) Len() int {
	return len(g.Keys)
}

func (g *Groups) addColumn(column string) int {
	if pos, ok := g.index[column]; ok {
		return pos
	}
	g.index[column] = len(g.Columns)
	g.Columns = append(g.Columns, column)
	return len(g.Columns) - 1
}

// Join performs a full outer join of left and right on the identifier column.
// Every identifier of either side gets a group, a column present on both sides stays one column,
// cells without counterpart are missing. Either side can be nil.
func Join(left, right *table.Table) (*Groups, error) {
	var identifier string
	for _, t := range []*table.Table{left, right} {
		if t != nil {
			identifier = t.Identifier
			break
		}
	}
	if identifier == "" {
		return nil, fmt.Errorf("nothing to join")
	}
	ret := NewGroups(identifier)
	var tables []*table.Table
	var positions [][]int
	for _, t := range []*table.Table{left, right} {
		if t == nil {
			continue
		}
		pos, err := ret.addColumns(t)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
		positions = append(positions, pos)
	}
	for i, t := range tables {
		ret.addRows(t, positions[i])
	}
	return ret, nil
}
