package merger

import (
	"sort"

	"github.com/viant/csvmerge/table"
)

// Coalesce collapses every identifier group into one row ordered by identifier value.
// Each non-identifier column is resolved independently: missing when the group has
// no value for it, otherwise resolve applied to the group's values in group order.
func Coalesce(g *Groups, resolve Resolver) (*table.Table, error) {
	ret, err := table.New(g.Identifier, g.Columns...)
	if err != nil {
		return nil, err
	}
	keys := append([]string{}, g.Keys...)
	sort.Strings(keys)
	var candidates []string
	for _, key := range keys {
		members := g.Rows[key]
		row := make(table.Row, len(g.Columns))
		row[0] = table.Text(key)
		for i := 1; i < len(g.Columns); i++ {
			candidates = candidates[:0]
			for _, member := range members {
				if cell := member.At(i); cell.Valid {
					candidates = append(candidates, cell.Value)
				}
			}
			if len(candidates) > 0 {
				row[i] = table.Text(resolve(candidates))
			}
		}
		ret.Append(row)
	}
	return ret, nil
}

// CoalesceTable collapses rows of a single table sharing an identifier value,
// it returns the coalesced table and the count of rows dropped for a missing identifier
func CoalesceTable(t *table.Table, resolve Resolver) (*table.Table, int, error) {
	groups, err := Join(t, nil)
	if err != nil {
		return nil, 0, err
	}
	ret, err := Coalesce(groups, resolve)
	if err != nil {
		return nil, 0, err
	}
	return ret, groups.Dropped, nil
}
