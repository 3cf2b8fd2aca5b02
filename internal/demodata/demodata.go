package demodata

import (
	"github.com/vizboard/vizboard/internal/ingest"
)

// Table is one of the built-in demo datasets. Rows and columns are copied
// verbatim into a new DataSource when a user adds demo data or applies a
// template.
type Table struct {
	Name    string
	Columns []ingest.Column
	Rows    []map[string]interface{}
}

const (
	KeySales      = "sales"
	KeyMarketing  = "marketing"
	KeyOperations = "operations"
)

var Sales = Table{
	Name: "Demo Sales Data",
	Columns: []ingest.Column{
		{Name: "month", Type: "string"},
		{Name: "revenue", Type: "number"},
		{Name: "orders", Type: "number"},
		{Name: "customers", Type: "number"},
		{Name: "avgOrderValue", Type: "number"},
	},
	Rows: []map[string]interface{}{
		{"month": "Jan", "revenue": 45000.0, "orders": 320.0, "customers": 280.0, "avgOrderValue": 141.0},
		{"month": "Feb", "revenue": 52000.0, "orders": 380.0, "customers": 310.0, "avgOrderValue": 137.0},
		{"month": "Mar", "revenue": 48000.0, "orders": 350.0, "customers": 290.0, "avgOrderValue": 137.0},
		{"month": "Apr", "revenue": 61000.0, "orders": 420.0, "customers": 350.0, "avgOrderValue": 145.0},
		{"month": "May", "revenue": 55000.0, "orders": 390.0, "customers": 320.0, "avgOrderValue": 141.0},
		{"month": "Jun", "revenue": 67000.0, "orders": 460.0, "customers": 380.0, "avgOrderValue": 146.0},
		{"month": "Jul", "revenue": 72000.0, "orders": 500.0, "customers": 410.0, "avgOrderValue": 144.0},
		{"month": "Aug", "revenue": 69000.0, "orders": 480.0, "customers": 390.0, "avgOrderValue": 144.0},
		{"month": "Sep", "revenue": 74000.0, "orders": 510.0, "customers": 420.0, "avgOrderValue": 145.0},
		{"month": "Oct", "revenue": 81000.0, "orders": 560.0, "customers": 460.0, "avgOrderValue": 145.0},
		{"month": "Nov", "revenue": 95000.0, "orders": 650.0, "customers": 520.0, "avgOrderValue": 146.0},
		{"month": "Dec", "revenue": 110000.0, "orders": 750.0, "customers": 580.0, "avgOrderValue": 147.0},
	},
}

var Marketing = Table{
	Name: "Demo Marketing Data",
	Columns: []ingest.Column{
		{Name: "channel", Type: "string"},
		{Name: "spend", Type: "number"},
		{Name: "impressions", Type: "number"},
		{Name: "clicks", Type: "number"},
		{Name: "conversions", Type: "number"},
	},
	Rows: []map[string]interface{}{
		{"channel": "Google Ads", "spend": 5000.0, "impressions": 250000.0, "clicks": 7500.0, "conversions": 150.0},
		{"channel": "Facebook", "spend": 3000.0, "impressions": 180000.0, "clicks": 5400.0, "conversions": 95.0},
		{"channel": "Instagram", "spend": 2500.0, "impressions": 150000.0, "clicks": 4500.0, "conversions": 80.0},
		{"channel": "LinkedIn", "spend": 2000.0, "impressions": 80000.0, "clicks": 2400.0, "conversions": 60.0},
		{"channel": "Twitter", "spend": 1000.0, "impressions": 60000.0, "clicks": 1800.0, "conversions": 30.0},
		{"channel": "Email", "spend": 500.0, "impressions": 50000.0, "clicks": 5000.0, "conversions": 200.0},
	},
}

var Operations = Table{
	Name: "Demo Operations Data",
	Columns: []ingest.Column{
		{Name: "metric", Type: "string"},
		{Name: "current", Type: "number"},
		{Name: "target", Type: "number"},
		{Name: "lastMonth", Type: "number"},
	},
	Rows: []map[string]interface{}{
		{"metric": "Customer Satisfaction", "current": 4.5, "target": 4.8, "lastMonth": 4.3},
		{"metric": "Response Time (hrs)", "current": 2.1, "target": 2.0, "lastMonth": 2.5},
		{"metric": "Resolution Rate (%)", "current": 92.0, "target": 95.0, "lastMonth": 89.0},
		{"metric": "Tickets Resolved", "current": 1250.0, "target": 1300.0, "lastMonth": 1180.0},
		{"metric": "Team Utilization (%)", "current": 78.0, "target": 80.0, "lastMonth": 75.0},
	},
}

// Lookup resolves a demo key to its table.
func Lookup(key string) (Table, bool) {
	switch key {
	case KeySales:
		return Sales, true
	case KeyMarketing:
		return Marketing, true
	case KeyOperations:
		return Operations, true
	default:
		return Table{}, false
	}
}
