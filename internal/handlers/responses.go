package handlers

import (
	"encoding/json"
	"time"

	"github.com/vizboard/vizboard/internal/models"
)

type WidgetResponse struct {
	ID          string          `json:"id"`
	DashboardID string          `json:"dashboardId"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Config      json.RawMessage `json:"config"`
	DataConfig  json.RawMessage `json:"dataConfig"`
	Position    json.RawMessage `json:"position"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type DashboardResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	IsPublic    bool             `json:"isPublic"`
	ShareToken  *string          `json:"shareToken"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	WidgetCount *int64           `json:"widgetCount,omitempty"`
	Widgets     []WidgetResponse `json:"widgets,omitempty"`
}

type DataSourceResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Columns   json.RawMessage `json:"columns"`
	Rows      json.RawMessage `json:"rows,omitempty"`
	RowCount  int             `json:"rowCount"`
	Config    json.RawMessage `json:"config"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toWidgetResponse(w models.Widget) WidgetResponse {
	return WidgetResponse{
		ID:          w.ID,
		DashboardID: w.DashboardID,
		Type:        w.Type,
		Title:       w.Title,
		Config:      json.RawMessage(w.Config),
		DataConfig:  json.RawMessage(w.DataConfig),
		Position:    json.RawMessage(w.Position),
		CreatedAt:   w.CreatedAt,
	}
}

func toWidgetResponses(widgets []models.Widget) []WidgetResponse {
	responses := make([]WidgetResponse, 0, len(widgets))

	for _, w := range widgets {
		responses = append(responses, toWidgetResponse(w))
	}

	return responses
}

func toDashboardResponse(d models.Dashboard) DashboardResponse {
	return DashboardResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		IsPublic:    d.IsPublic,
		ShareToken:  d.ShareToken,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// toDataSourceResponse shapes a full record; includeRows=false trims the
// row payload for list views, leaving the count.
func toDataSourceResponse(ds models.DataSource, includeRows bool) DataSourceResponse {
	response := DataSourceResponse{
		ID:        ds.ID,
		Name:      ds.Name,
		Type:      ds.Type,
		Columns:   json.RawMessage(ds.Columns),
		RowCount:  countRows(ds.Rows),
		Config:    json.RawMessage(ds.Config),
		CreatedAt: ds.CreatedAt,
		UpdatedAt: ds.UpdatedAt,
	}

	if includeRows {
		response.Rows = json.RawMessage(ds.Rows)
	}

	return response
}

func countRows(raw []byte) int {
	var rows []json.RawMessage

	if err := json.Unmarshal(raw, &rows); err != nil {
		return 0
	}

	return len(rows)
}
