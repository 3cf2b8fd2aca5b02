package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vizboard/vizboard/db"
	"github.com/vizboard/vizboard/internal/demodata"
	"github.com/vizboard/vizboard/internal/ingest"
	"github.com/vizboard/vizboard/internal/models"
	"github.com/vizboard/vizboard/internal/render"
	"github.com/vizboard/vizboard/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateWidgetRequest struct {
	Type       string                 `json:"type" binding:"required"`
	Title      string                 `json:"title" binding:"required"`
	Config     map[string]interface{} `json:"config"`
	DataConfig map[string]interface{} `json:"dataConfig"`
	Position   map[string]interface{} `json:"position"`
}

type UpdateWidgetRequest struct {
	Title      *string                `json:"title"`
	Config     map[string]interface{} `json:"config"`
	DataConfig map[string]interface{} `json:"dataConfig"`
	Position   map[string]interface{} `json:"position"`
}

func defaultPosition() map[string]interface{} {
	return map[string]interface{}{"x": 0, "y": 0, "w": 4, "h": 3}
}

func marshalJSONColumn(value map[string]interface{}, fallback map[string]interface{}) ([]byte, error) {
	if value == nil {
		value = fallback
	}

	return json.Marshal(value)
}

func CreateWidget(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	dashboardID := ctx.Param("id")

	var dashboard models.Dashboard

	if err := db.DB.Where("id = ? AND user_id = ?", dashboardID, userID).First(&dashboard).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found"})
		} else {
			log.Printf("Failed to retrieve dashboard: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		}
		return
	}

	var body CreateWidgetRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Type and title are required"})
		return
	}

	config, err := marshalJSONColumn(body.Config, map[string]interface{}{})

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid config format"})
		return
	}

	dataConfig, err := marshalJSONColumn(body.DataConfig, map[string]interface{}{})

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dataConfig format"})
		return
	}

	position, err := marshalJSONColumn(body.Position, defaultPosition())

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position format"})
		return
	}

	widget := models.Widget{
		DashboardID: dashboard.ID,
		Type:        body.Type,
		Title:       body.Title,
		Config:      config,
		DataConfig:  dataConfig,
		Position:    position,
	}

	if err := db.DB.Create(&widget).Error; err != nil {
		log.Printf("Failed to create widget: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create widget"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"widget": toWidgetResponse(widget)})
}

// findOwnedWidget resolves a widget through its dashboard's owner in a
// single joined query, so a foreign widget and a missing one are
// indistinguishable to the caller.
func findOwnedWidget(widgetID, userID string) (models.Widget, error) {
	var widget models.Widget

	err := db.DB.
		Select("widgets.*").
		Joins("JOIN dashboards ON dashboards.id = widgets.dashboard_id").
		Where("widgets.id = ? AND dashboards.user_id = ?", widgetID, userID).
		First(&widget).Error

	return widget, err
}

func UpdateWidget(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	widget, err := findOwnedWidget(ctx.Param("id"), userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Widget not found"})
		} else {
			log.Printf("Failed to retrieve widget: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve widget"})
		}
		return
	}

	var body UpdateWidgetRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if body.Title != nil && *body.Title != "" {
		updates["title"] = *body.Title
	}

	for column, value := range map[string]map[string]interface{}{
		"config":      body.Config,
		"data_config": body.DataConfig,
		"position":    body.Position,
	} {
		if value == nil {
			continue
		}

		raw, err := json.Marshal(value)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		updates[column] = datatypes.JSON(raw)
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&widget).Updates(updates).Error; err != nil {
			log.Printf("Failed to update widget: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update widget"})
			return
		}

		if err := db.DB.First(&widget, "id = ?", widget.ID).Error; err != nil {
			log.Printf("Failed to refresh widget: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update widget"})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"widget": toWidgetResponse(widget)})
}

func DeleteWidget(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	widget, err := findOwnedWidget(ctx.Param("id"), userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Widget not found"})
		} else {
			log.Printf("Failed to retrieve widget: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve widget"})
		}
		return
	}

	if err := db.DB.Delete(&widget).Error; err != nil {
		log.Printf("Failed to delete widget: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete widget"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func RenderWidget(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	widget, err := findOwnedWidget(ctx.Param("id"), userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Widget not found"})
		} else {
			log.Printf("Failed to retrieve widget: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve widget"})
		}
		return
	}

	data := resolveWidgetData(widget, userID)

	ctx.JSON(http.StatusOK, gin.H{
		"widget": toWidgetResponse(widget),
		"output": renderWidgetOutput(widget, data),
	})
}

// resolveWidgetData loads the data source bound by the widget's
// dataConfig, scoped to the owner. Widgets with no binding (or a stale
// one) fall back to the demo sales table so rendering still paints.
func resolveWidgetData(widget models.Widget, userID string) render.Data {
	var dataConfig map[string]interface{}

	if err := json.Unmarshal(widget.DataConfig, &dataConfig); err == nil {
		if id, ok := dataConfig["dataSourceId"].(string); ok && id != "" {
			var source models.DataSource

			if err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&source).Error; err == nil {
				return dataSourceRenderData(source)
			}
		}
	}

	return render.Data{Columns: demodata.Sales.Columns, Rows: demodata.Sales.Rows}
}

func dataSourceRenderData(source models.DataSource) render.Data {
	var columns []ingest.Column
	var rows []map[string]interface{}

	if err := json.Unmarshal(source.Columns, &columns); err != nil {
		log.Printf("Failed to decode columns for data source %s: %v", source.ID, err)
	}

	if err := json.Unmarshal(source.Rows, &rows); err != nil {
		log.Printf("Failed to decode rows for data source %s: %v", source.ID, err)
	}

	return render.Data{Columns: columns, Rows: rows}
}

func renderWidgetOutput(widget models.Widget, data render.Data) interface{} {
	var config, dataConfig map[string]interface{}

	// Corrupt JSON renders like an unconfigured widget.
	_ = json.Unmarshal(widget.Config, &config)
	_ = json.Unmarshal(widget.DataConfig, &dataConfig)

	return render.Render(render.Widget{
		Type:       widget.Type,
		Title:      widget.Title,
		Config:     config,
		DataConfig: dataConfig,
	}, data)
}
