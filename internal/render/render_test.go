package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vizboard/vizboard/internal/ingest"
)

func rows(values ...map[string]interface{}) []map[string]interface{} {
	return values
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.5M", FormatValue(1500000))
	assert.Equal(t, "2.5K", FormatValue(2500))
	assert.Equal(t, "500", FormatValue(500))
	assert.Equal(t, "4.5", FormatValue(4.5))
	assert.Equal(t, "1.0K", FormatValue(1000))
	assert.Equal(t, "1.0M", FormatValue(1000000))
}

func TestRenderKPISum(t *testing.T) {
	out := Render(Widget{
		Type:       "kpi",
		Config:     map[string]interface{}{"prefix": "$", "color": "#10b981"},
		DataConfig: map[string]interface{}{"field": "revenue", "aggregation": "sum"},
	}, Data{Rows: rows(
		map[string]interface{}{"revenue": 100.0},
		map[string]interface{}{"revenue": 200.0},
	)})

	kpi, ok := out.(KPI)
	require.True(t, ok)
	assert.Equal(t, 300.0, kpi.Value)
	assert.Equal(t, "300", kpi.Formatted)
	assert.Equal(t, "$", kpi.Prefix)
	assert.Equal(t, "#10b981", kpi.Color)
}

func TestRenderKPIAverage(t *testing.T) {
	out := Render(Widget{
		Type:       "kpi",
		DataConfig: map[string]interface{}{"field": "score", "aggregation": "avg"},
	}, Data{Rows: rows(
		map[string]interface{}{"score": 10.0},
		map[string]interface{}{"score": 20.0},
	)})

	kpi := out.(KPI)
	assert.Equal(t, 15.0, kpi.Value)
}

func TestRenderKPIMetricFilter(t *testing.T) {
	out := Render(Widget{
		Type:       "kpi",
		DataConfig: map[string]interface{}{"metric": "Customer Satisfaction", "field": "current"},
	}, Data{Rows: rows(
		map[string]interface{}{"metric": "Customer Satisfaction", "current": 4.5},
		map[string]interface{}{"metric": "Response Time (hrs)", "current": 2.1},
	)})

	kpi := out.(KPI)
	assert.Equal(t, 4.5, kpi.Value)
	assert.Equal(t, "4.5", kpi.Formatted)
}

func TestRenderChartProjectsRowsInOrder(t *testing.T) {
	out := Render(Widget{
		Type:       "line",
		DataConfig: map[string]interface{}{"xField": "month", "yField": "revenue"},
	}, Data{Rows: rows(
		map[string]interface{}{"month": "Jan", "revenue": 100.0},
		map[string]interface{}{"month": "Feb", "revenue": 200.0},
	)})

	chart, ok := out.(Chart)
	require.True(t, ok)
	assert.Equal(t, "line", chart.Type)
	require.Len(t, chart.Points, 2)
	assert.Equal(t, "Jan", chart.Points[0].X)
	assert.Equal(t, 100.0, chart.Points[0].Y)
	assert.Equal(t, "Feb", chart.Points[1].X)
}

func TestRenderPieCapsSlicesAndCyclesPalette(t *testing.T) {
	var data []map[string]interface{}

	for i := 0; i < 10; i++ {
		data = append(data, map[string]interface{}{"channel": "c", "spend": 1.0})
	}

	out := Render(Widget{
		Type:       "pie",
		DataConfig: map[string]interface{}{"nameField": "channel", "valueField": "spend"},
	}, Data{Rows: data})

	pie, ok := out.(Pie)
	require.True(t, ok)
	require.Len(t, pie.Slices, 6)
	assert.Equal(t, Palette[0], pie.Slices[0].Color)
	assert.Equal(t, Palette[5], pie.Slices[5].Color)
}

func TestRenderTableColumnOrder(t *testing.T) {
	schema := []ingest.Column{{Name: "month", Type: "string"}, {Name: "revenue", Type: "number"}}
	data := rows(map[string]interface{}{"month": "Jan", "revenue": 100.0})

	out := Render(Widget{Type: "table"}, Data{Columns: schema, Rows: data})

	table, ok := out.(Table)
	require.True(t, ok)
	assert.Equal(t, []string{"month", "revenue"}, table.Columns)
	assert.Equal(t, data, table.Rows)

	// A configured subset overrides the schema order.
	out = Render(Widget{
		Type:       "table",
		DataConfig: map[string]interface{}{"columns": []interface{}{"revenue"}},
	}, Data{Columns: schema, Rows: data})

	assert.Equal(t, []string{"revenue"}, out.(Table).Columns)
}

func TestRenderProgress(t *testing.T) {
	out := Render(Widget{
		Type:       "progress",
		DataConfig: map[string]interface{}{"currentField": "current", "targetField": "target"},
	}, Data{Rows: rows(map[string]interface{}{"current": 78.0, "target": 80.0})})

	progress, ok := out.(Progress)
	require.True(t, ok)
	assert.Equal(t, 98, progress.Percent)
	assert.Equal(t, 78.0, progress.Current)
	assert.Equal(t, 80.0, progress.Target)
}

func TestRenderProgressClampsAboveTarget(t *testing.T) {
	out := Render(Widget{Type: "progress"}, Data{Rows: rows(
		map[string]interface{}{"current": 120.0, "target": 80.0},
	)})

	assert.Equal(t, 100, out.(Progress).Percent)
}

func TestRenderProgressZeroTarget(t *testing.T) {
	out := Render(Widget{Type: "progress"}, Data{Rows: rows(
		map[string]interface{}{"current": 10.0, "target": 0.0},
	)})

	assert.Equal(t, 0, out.(Progress).Percent)
}

func TestRenderUnknownTypeIsPlaceholder(t *testing.T) {
	out := Render(Widget{Type: "gauge"}, Data{})

	placeholder, ok := out.(Placeholder)
	require.True(t, ok)
	assert.Contains(t, placeholder.Message, "gauge")
}
