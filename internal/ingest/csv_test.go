package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVInfersColumnTypes(t *testing.T) {
	dataset, err := ParseCSV(strings.NewReader("month,revenue\nJan,100\nFeb,200\n"))
	require.NoError(t, err)

	require.Len(t, dataset.Columns, 2)
	assert.Equal(t, Column{Name: "month", Type: "string"}, dataset.Columns[0])
	assert.Equal(t, Column{Name: "revenue", Type: "number"}, dataset.Columns[1])

	require.Len(t, dataset.Rows, 2)
	assert.Equal(t, "Jan", dataset.Rows[0]["month"])
	assert.Equal(t, 100.0, dataset.Rows[0]["revenue"])
	assert.Equal(t, 200.0, dataset.Rows[1]["revenue"])
}

func TestParseCSVTypesInferredFromFirstRowOnly(t *testing.T) {
	// The second row's non-numeric value does not demote the column.
	dataset, err := ParseCSV(strings.NewReader("name,score\nalice,10\nbob,n/a\n"))
	require.NoError(t, err)

	assert.Equal(t, "number", dataset.Columns[1].Type)
	assert.Equal(t, 10.0, dataset.Rows[0]["score"])
	assert.Equal(t, "n/a", dataset.Rows[1]["score"])
}

func TestParseCSVHeaderOnly(t *testing.T) {
	dataset, err := ParseCSV(strings.NewReader("a,b\n"))
	require.NoError(t, err)

	assert.Empty(t, dataset.Rows)
	assert.Equal(t, "string", dataset.Columns[0].Type)
	assert.Equal(t, "string", dataset.Columns[1].Type)
}

func TestParseCSVEmptyFile(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Row)
}

func TestParseCSVRaggedRowReportsLocation(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("a,b\n1,2\n3\n"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Row)
	assert.NotEmpty(t, parseErr.Message)
}

func TestParseCSVEmptyHeaderField(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("a,,c\n1,2,3\n"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Row)
	assert.Equal(t, 2, parseErr.Column)
}
