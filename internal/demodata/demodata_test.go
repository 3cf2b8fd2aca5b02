package demodata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, key := range []string{KeySales, KeyMarketing, KeyOperations} {
		table, ok := Lookup(key)
		require.True(t, ok, key)
		assert.NotEmpty(t, table.Name)
		assert.NotEmpty(t, table.Columns)
		assert.NotEmpty(t, table.Rows)

		// Every row carries every declared column.
		for _, row := range table.Rows {
			for _, column := range table.Columns {
				assert.Contains(t, row, column.Name)
			}
		}
	}

	_, ok := Lookup("finance")
	assert.False(t, ok)
}

func TestSalesTableShape(t *testing.T) {
	assert.Len(t, Sales.Rows, 12)
	assert.Equal(t, "Demo Sales Data", Sales.Name)
	assert.Equal(t, 45000.0, Sales.Rows[0]["revenue"])
}
