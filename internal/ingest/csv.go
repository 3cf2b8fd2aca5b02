package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Column struct {
	Name string `json:"name"`
	Type string `json:"type"` // "number" or "string"
}

// Dataset is the parsed form of an uploaded file: ordered column schema
// plus rows keyed by header name. Numeric-looking cells are stored as
// float64 so widgets can aggregate without re-parsing.
type Dataset struct {
	Columns []Column
	Rows    []map[string]interface{}
}

// ParseError reports where a malformed upload broke down. Row is
// 1-based and counts the header.
type ParseError struct {
	Row     int    `json:"row"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %d: %s", e.Row, e.Column, e.Message)
}

// ParseCSV reads delimited text with a header row. Column types are
// inferred from the first data row only: a numeric value there marks the
// whole column as "number". A file with no data rows gets all-string
// columns.
func ParseCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()

	if err == io.EOF {
		return nil, &ParseError{Row: 1, Column: 1, Message: "file is empty"}
	}

	if err != nil {
		return nil, asParseError(err)
	}

	for i, name := range header {
		header[i] = strings.TrimSpace(name)

		if header[i] == "" {
			return nil, &ParseError{Row: 1, Column: i + 1, Message: "empty header field"}
		}
	}

	var rows []map[string]interface{}

	for {
		record, err := reader.Read()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, asParseError(err)
		}

		row := make(map[string]interface{}, len(header))

		for i, name := range header {
			row[name] = typeCell(record[i])
		}

		rows = append(rows, row)
	}

	columns := make([]Column, len(header))

	for i, name := range header {
		columnType := "string"

		if len(rows) > 0 {
			if _, ok := rows[0][name].(float64); ok {
				columnType = "number"
			}
		}

		columns[i] = Column{Name: name, Type: columnType}
	}

	return &Dataset{Columns: columns, Rows: rows}, nil
}

func typeCell(value string) interface{} {
	trimmed := strings.TrimSpace(value)

	if trimmed != "" {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return n
		}
	}

	return value
}

func asParseError(err error) error {
	var csvErr *csv.ParseError

	if errors.As(err, &csvErr) {
		return &ParseError{
			Row:     csvErr.Line,
			Column:  csvErr.Column,
			Message: csvErr.Err.Error(),
		}
	}

	return &ParseError{Row: 0, Column: 0, Message: err.Error()}
}
