package templates

// Template is a static bundle of widget definitions bound to one of the
// demo data categories. Applying a template copies the widgets onto a new
// dashboard and rewrites each dataConfig to point at a freshly created
// demo data source.
type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Thumbnail   string         `json:"thumbnail"`
	Config      TemplateConfig `json:"config"`
}

type TemplateConfig struct {
	Widgets []TemplateWidget `json:"widgets"`
}

type TemplateWidget struct {
	Type       string                 `json:"type"`
	Title      string                 `json:"title"`
	Position   map[string]interface{} `json:"position"`
	Config     map[string]interface{} `json:"config"`
	DataConfig map[string]interface{} `json:"dataConfig"`
}

var Catalog = []Template{
	{
		ID:          "sales-dashboard",
		Name:        "Sales Dashboard",
		Description: "Track revenue, orders, and customer metrics",
		Category:    "sales",
		Thumbnail:   "/templates/sales.png",
		Config: TemplateConfig{
			Widgets: []TemplateWidget{
				{Type: "kpi", Title: "Total Revenue", Position: pos(0, 0, 3, 2), Config: map[string]interface{}{"color": "#10b981"}, DataConfig: map[string]interface{}{"source": "sales", "field": "revenue", "aggregation": "sum"}},
				{Type: "kpi", Title: "Total Orders", Position: pos(3, 0, 3, 2), Config: map[string]interface{}{"color": "#3b82f6"}, DataConfig: map[string]interface{}{"source": "sales", "field": "orders", "aggregation": "sum"}},
				{Type: "kpi", Title: "Customers", Position: pos(6, 0, 3, 2), Config: map[string]interface{}{"color": "#8b5cf6"}, DataConfig: map[string]interface{}{"source": "sales", "field": "customers", "aggregation": "sum"}},
				{Type: "kpi", Title: "Avg Order Value", Position: pos(9, 0, 3, 2), Config: map[string]interface{}{"color": "#f59e0b"}, DataConfig: map[string]interface{}{"source": "sales", "field": "avgOrderValue", "aggregation": "avg"}},
				{Type: "line", Title: "Revenue Over Time", Position: pos(0, 2, 8, 4), Config: map[string]interface{}{"color": "#10b981"}, DataConfig: map[string]interface{}{"source": "sales", "xField": "month", "yField": "revenue"}},
				{Type: "bar", Title: "Orders by Month", Position: pos(8, 2, 4, 4), Config: map[string]interface{}{"color": "#3b82f6"}, DataConfig: map[string]interface{}{"source": "sales", "xField": "month", "yField": "orders"}},
			},
		},
	},
	{
		ID:          "marketing-dashboard",
		Name:        "Marketing Dashboard",
		Description: "Analyze ad spend, impressions, and conversions",
		Category:    "marketing",
		Thumbnail:   "/templates/marketing.png",
		Config: TemplateConfig{
			Widgets: []TemplateWidget{
				{Type: "kpi", Title: "Total Spend", Position: pos(0, 0, 3, 2), Config: map[string]interface{}{"color": "#ef4444", "prefix": "$"}, DataConfig: map[string]interface{}{"source": "marketing", "field": "spend", "aggregation": "sum"}},
				{Type: "kpi", Title: "Impressions", Position: pos(3, 0, 3, 2), Config: map[string]interface{}{"color": "#3b82f6"}, DataConfig: map[string]interface{}{"source": "marketing", "field": "impressions", "aggregation": "sum"}},
				{Type: "kpi", Title: "Conversions", Position: pos(6, 0, 3, 2), Config: map[string]interface{}{"color": "#10b981"}, DataConfig: map[string]interface{}{"source": "marketing", "field": "conversions", "aggregation": "sum"}},
				{Type: "pie", Title: "Spend by Channel", Position: pos(0, 2, 6, 4), Config: map[string]interface{}{}, DataConfig: map[string]interface{}{"source": "marketing", "nameField": "channel", "valueField": "spend"}},
				{Type: "bar", Title: "Conversions by Channel", Position: pos(6, 2, 6, 4), Config: map[string]interface{}{"color": "#10b981"}, DataConfig: map[string]interface{}{"source": "marketing", "xField": "channel", "yField": "conversions"}},
			},
		},
	},
	{
		ID:          "operations-dashboard",
		Name:        "Operations Dashboard",
		Description: "Monitor team performance and KPIs",
		Category:    "operations",
		Thumbnail:   "/templates/operations.png",
		Config: TemplateConfig{
			Widgets: []TemplateWidget{
				{Type: "kpi", Title: "CSAT Score", Position: pos(0, 0, 4, 2), Config: map[string]interface{}{"color": "#10b981"}, DataConfig: map[string]interface{}{"source": "operations", "metric": "Customer Satisfaction", "field": "current"}},
				{Type: "kpi", Title: "Response Time", Position: pos(4, 0, 4, 2), Config: map[string]interface{}{"color": "#f59e0b", "suffix": " hrs"}, DataConfig: map[string]interface{}{"source": "operations", "metric": "Response Time (hrs)", "field": "current"}},
				{Type: "kpi", Title: "Resolution Rate", Position: pos(8, 0, 4, 2), Config: map[string]interface{}{"color": "#3b82f6", "suffix": "%"}, DataConfig: map[string]interface{}{"source": "operations", "metric": "Resolution Rate (%)", "field": "current"}},
				{Type: "progress", Title: "Team Utilization", Position: pos(0, 2, 6, 2), Config: map[string]interface{}{"color": "#8b5cf6"}, DataConfig: map[string]interface{}{"source": "operations", "metric": "Team Utilization (%)", "currentField": "current", "targetField": "target"}},
				{Type: "table", Title: "All Metrics", Position: pos(0, 4, 12, 4), Config: map[string]interface{}{}, DataConfig: map[string]interface{}{"source": "operations"}},
			},
		},
	},
}

// Lookup resolves a template by its catalog id.
func Lookup(id string) (Template, bool) {
	for _, t := range Catalog {
		if t.ID == id {
			return t, true
		}
	}

	return Template{}, false
}

func pos(x, y, w, h int) map[string]interface{} {
	return map[string]interface{}{"x": x, "y": y, "w": w, "h": h}
}
