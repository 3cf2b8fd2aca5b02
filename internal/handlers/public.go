package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vizboard/vizboard/db"
	"github.com/vizboard/vizboard/internal/demodata"
	"github.com/vizboard/vizboard/internal/models"
	"github.com/vizboard/vizboard/internal/render"
	"gorm.io/gorm"
)

type PublicWidgetResponse struct {
	WidgetResponse
	Output interface{} `json:"output"`
}

// GetPublicDashboard is the unauthenticated share path. The token match
// (combined with is_public) is the whole authorization; every data source
// referenced by the widgets is returned so the public view can paint
// without owner-scoped calls.
func GetPublicDashboard(ctx *gin.Context) {
	token := ctx.Param("token")

	var dashboard models.Dashboard

	if err := db.DB.Preload("Widgets", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC")
	}).Where("share_token = ? AND is_public = ?", token, true).First(&dashboard).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found or not shared"})
		} else {
			log.Printf("Failed to retrieve shared dashboard: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		}
		return
	}

	sources := referencedDataSources(dashboard.Widgets)

	sourcesByID := make(map[string]models.DataSource, len(sources))

	for _, source := range sources {
		sourcesByID[source.ID] = source
	}

	widgets := make([]PublicWidgetResponse, 0, len(dashboard.Widgets))

	for _, widget := range dashboard.Widgets {
		widgets = append(widgets, PublicWidgetResponse{
			WidgetResponse: toWidgetResponse(widget),
			Output:         renderWidgetOutput(widget, publicWidgetData(widget, sourcesByID)),
		})
	}

	response := gin.H{
		"id":          dashboard.ID,
		"name":        dashboard.Name,
		"description": dashboard.Description,
		"isPublic":    dashboard.IsPublic,
		"widgets":     widgets,
	}

	dataSources := make([]DataSourceResponse, 0, len(sources))

	for _, source := range sources {
		dataSources = append(dataSources, toDataSourceResponse(source, true))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"dashboard":   response,
		"dataSources": dataSources,
	})
}

// referencedDataSources resolves every distinct dataSourceId mentioned by
// the widgets' dataConfig. No owner filter here: reachability through a
// shared dashboard is what grants access.
func referencedDataSources(widgets []models.Widget) []models.DataSource {
	seen := make(map[string]bool)
	var ids []string

	for _, widget := range widgets {
		var dataConfig map[string]interface{}

		if err := json.Unmarshal(widget.DataConfig, &dataConfig); err != nil {
			continue
		}

		if id, ok := dataConfig["dataSourceId"].(string); ok && id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil
	}

	var sources []models.DataSource

	if err := db.DB.Where("id IN ?", ids).Find(&sources).Error; err != nil {
		log.Printf("Failed to retrieve data sources for shared dashboard: %v", err)
		return nil
	}

	return sources
}

func publicWidgetData(widget models.Widget, sources map[string]models.DataSource) render.Data {
	var dataConfig map[string]interface{}

	if err := json.Unmarshal(widget.DataConfig, &dataConfig); err == nil {
		if id, ok := dataConfig["dataSourceId"].(string); ok {
			if source, ok := sources[id]; ok {
				return dataSourceRenderData(source)
			}
		}
	}

	return render.Data{Columns: demodata.Sales.Columns, Rows: demodata.Sales.Rows}
}
