// Package render maps a widget and its bound rows to a typed visual
// payload. Rendering is pure: no storage access, and an unknown widget
// type yields a placeholder rather than an error.
package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vizboard/vizboard/internal/ingest"
)

// Palette cycled by pie slices, by row index.
var Palette = []string{"#6366f1", "#8b5cf6", "#ec4899", "#f59e0b", "#10b981", "#3b82f6", "#ef4444", "#84cc16"}

const defaultColor = "#6366f1"

// pieMaxSlices caps pie charts to the leading rows.
const pieMaxSlices = 6

type Widget struct {
	Type       string
	Title      string
	Config     map[string]interface{}
	DataConfig map[string]interface{}
}

type Data struct {
	Columns []ingest.Column
	Rows    []map[string]interface{}
}

type Point struct {
	X interface{} `json:"x"`
	Y float64     `json:"y"`
}

type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type KPI struct {
	Type      string  `json:"type"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Prefix    string  `json:"prefix,omitempty"`
	Suffix    string  `json:"suffix,omitempty"`
	Color     string  `json:"color"`
}

type Chart struct {
	Type   string  `json:"type"`
	Points []Point `json:"points"`
	XField string  `json:"xField"`
	YField string  `json:"yField"`
	Color  string  `json:"color"`
}

type Pie struct {
	Type   string  `json:"type"`
	Slices []Slice `json:"slices"`
}

type Table struct {
	Type    string                   `json:"type"`
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

type Progress struct {
	Type    string  `json:"type"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Percent int     `json:"percent"`
	Color   string  `json:"color"`
}

type Placeholder struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Render dispatches on the widget type and returns a JSON-ready payload.
func Render(w Widget, d Data) interface{} {
	rows := filterRows(d.Rows, w.DataConfig)

	switch w.Type {
	case "kpi":
		value := aggregate(rows, stringOpt(w.DataConfig, "field", "revenue"), stringOpt(w.DataConfig, "aggregation", "sum"))
		return KPI{
			Type:      "kpi",
			Value:     value,
			Formatted: FormatValue(value),
			Prefix:    stringOpt(w.Config, "prefix", ""),
			Suffix:    stringOpt(w.Config, "suffix", ""),
			Color:     stringOpt(w.Config, "color", defaultColor),
		}
	case "line", "bar":
		xField := stringOpt(w.DataConfig, "xField", "month")
		yField := stringOpt(w.DataConfig, "yField", "revenue")
		points := make([]Point, 0, len(rows))

		for _, row := range rows {
			points = append(points, Point{X: row[xField], Y: numeric(row[yField])})
		}

		return Chart{Type: w.Type, Points: points, XField: xField, YField: yField, Color: stringOpt(w.Config, "color", defaultColor)}
	case "pie":
		nameField := stringOpt(w.DataConfig, "nameField", "month")
		valueField := stringOpt(w.DataConfig, "valueField", "revenue")

		if len(rows) > pieMaxSlices {
			rows = rows[:pieMaxSlices]
		}

		slices := make([]Slice, 0, len(rows))

		for i, row := range rows {
			slices = append(slices, Slice{
				Name:  fmt.Sprintf("%v", row[nameField]),
				Value: numeric(row[valueField]),
				Color: Palette[i%len(Palette)],
			})
		}

		return Pie{Type: "pie", Slices: slices}
	case "table":
		return Table{Type: "table", Columns: tableColumns(w.DataConfig, d.Columns), Rows: rows}
	case "progress":
		current := sumField(rows, stringOpt(w.DataConfig, "currentField", "current"))
		target := sumField(rows, stringOpt(w.DataConfig, "targetField", "target"))

		return Progress{
			Type:    "progress",
			Current: current,
			Target:  target,
			Percent: percent(current, target),
			Color:   stringOpt(w.Config, "color", defaultColor),
		}
	default:
		return Placeholder{Type: "placeholder", Message: fmt.Sprintf("Unknown widget type %q", w.Type)}
	}
}

// FormatValue shortens large numbers with K/M suffixes, one decimal
// place. Values under a thousand are printed exactly.
func FormatValue(v float64) string {
	switch {
	case v >= 1000000:
		return strconv.FormatFloat(v/1000000, 'f', 1, 64) + "M"
	case v >= 1000:
		return strconv.FormatFloat(v/1000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// filterRows narrows rows to those whose "metric" column equals the
// dataConfig metric, when one is configured. Used by the operations
// widgets to bind a single named row.
func filterRows(rows []map[string]interface{}, dataConfig map[string]interface{}) []map[string]interface{} {
	metric := stringOpt(dataConfig, "metric", "")

	if metric == "" {
		return rows
	}

	var filtered []map[string]interface{}

	for _, row := range rows {
		if fmt.Sprintf("%v", row["metric"]) == metric {
			filtered = append(filtered, row)
		}
	}

	return filtered
}

func aggregate(rows []map[string]interface{}, field, aggregation string) float64 {
	sum := sumField(rows, field)

	if aggregation == "avg" && len(rows) > 0 {
		return sum / float64(len(rows))
	}

	return sum
}

func sumField(rows []map[string]interface{}, field string) float64 {
	var sum float64

	for _, row := range rows {
		sum += numeric(row[field])
	}

	return sum
}

func percent(current, target float64) int {
	if target <= 0 {
		return 0
	}

	p := int(math.Round(current / target * 100))

	if p > 100 {
		p = 100
	}

	if p < 0 {
		p = 0
	}

	return p
}

func tableColumns(dataConfig map[string]interface{}, schema []ingest.Column) []string {
	if configured, ok := dataConfig["columns"].([]interface{}); ok && len(configured) > 0 {
		columns := make([]string, 0, len(configured))

		for _, c := range configured {
			if name, ok := c.(string); ok {
				columns = append(columns, name)
			}
		}

		if len(columns) > 0 {
			return columns
		}
	}

	columns := make([]string, len(schema))

	for i, c := range schema {
		columns[i] = c.Name
	}

	return columns
}

func stringOpt(m map[string]interface{}, key, fallback string) string {
	if m != nil {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}

	return fallback
}

func numeric(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}

	return 0
}
