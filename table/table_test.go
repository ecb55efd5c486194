package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var testCases = []struct {
		description string
		identifier  string
		columns     []string
		expectErr   error
		hasErr      bool
	}{
		{description: "valid", identifier: "SEQN", columns: []string{"SEQN", "A"}},
		{description: "identifier in the middle", identifier: "SEQN", columns: []string{"A", "SEQN", "B"}},
		{description: "no identifier", identifier: "SEQN", columns: []string{"A"}, expectErr: ErrNoIdentifier},
		{description: "duplicate", identifier: "SEQN", columns: []string{"SEQN", "A", "A"}, expectErr: ErrDuplicateColumn},
		{description: "empty identifier", identifier: "", columns: []string{"A"}, hasErr: true},
	}
	for _, testCase := range testCases {
		_, err := New(testCase.identifier, testCase.columns...)
		switch {
		case testCase.expectErr != nil:
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
		case testCase.hasErr:
			assert.Error(t, err, testCase.description)
		default:
			assert.NoError(t, err, testCase.description)
		}
	}
}

func TestTable_AddColumn(t *testing.T) {
	tbl, err := New("SEQN", "SEQN", "A")
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.AddColumn("A"))
	assert.Equal(t, 2, tbl.AddColumn("B"))
	assert.Equal(t, []string{"SEQN", "A", "B"}, tbl.Columns)

	tbl.Append(Row{Text("1"), Text("x")})
	cell, ok := tbl.Value("1", "B")
	assert.True(t, ok)
	assert.False(t, cell.Valid, "short row reads as missing")

	cell, ok = tbl.Value("1", "A")
	assert.True(t, ok)
	assert.Equal(t, Text("x"), cell)

	_, ok = tbl.Value("2", "A")
	assert.False(t, ok)
}

func TestTable_Literal(t *testing.T) {
	tbl := &Table{Identifier: "ID", Columns: []string{"V", "ID"}, Rows: []Row{{Text("v"), Text("k")}}}
	pos, ok := tbl.Index("ID")
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
	assert.Equal(t, Text("k"), tbl.Key(0))
	assert.Equal(t, map[string]Cell{"V": Text("v"), "ID": Text("k")}, tbl.Record(0))
}

func TestChecksum(t *testing.T) {
	first := Checksum([]byte("SEQN,X\n1,9\n"))
	assert.Equal(t, first, Checksum([]byte("SEQN,X\n1,9\n")))
	assert.NotEqual(t, first, Checksum([]byte("SEQN,X\n1,10\n")))

	tbl, err := New("SEQN", "SEQN", "X")
	require.NoError(t, err)
	tbl.Append(Row{Text("1"), Text("9")})
	digest, err := Digest(tbl, "")
	require.NoError(t, err)
	assert.Equal(t, first, digest)

	withMissing, err := Digest(tbl, "NA")
	require.NoError(t, err)
	assert.Equal(t, first, withMissing, "no missing cell, same encoding")
}
