package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vizboard/vizboard/db"
	"github.com/vizboard/vizboard/internal/demodata"
	"github.com/vizboard/vizboard/internal/models"
	"github.com/vizboard/vizboard/internal/templates"
	"github.com/vizboard/vizboard/internal/utils"
	"gorm.io/gorm"
)

func ListTemplates(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"templates": templates.Catalog})
}

// UseTemplate instantiates a template: one demo data source, one
// dashboard, and the template's widgets with each dataConfig rebound to
// the new source. The whole compound create runs in a single transaction
// so a mid-sequence failure leaves nothing behind.
func UseTemplate(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	template, ok := templates.Lookup(ctx.Param("id"))

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	table, ok := demodata.Lookup(template.Category)

	if !ok {
		// Catalog categories always match a demo table; sales is the
		// original's fallback.
		table = demodata.Sales
	}

	var dataSource models.DataSource
	var dashboard models.Dashboard
	var widgets []models.Widget

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var err error

		dataSource, err = createDemoDataSource(tx, userID, template.Category, table)

		if err != nil {
			return err
		}

		dashboard = models.Dashboard{
			UserID:      userID,
			Name:        template.Name,
			Description: template.Description,
		}

		if err := tx.Create(&dashboard).Error; err != nil {
			return err
		}

		for _, entry := range template.Config.Widgets {
			dataConfig := make(map[string]interface{}, len(entry.DataConfig)+1)

			for k, v := range entry.DataConfig {
				dataConfig[k] = v
			}

			dataConfig["dataSourceId"] = dataSource.ID

			widget, err := buildTemplateWidget(dashboard.ID, entry, dataConfig)

			if err != nil {
				return err
			}

			if err := tx.Create(&widget).Error; err != nil {
				return err
			}

			widgets = append(widgets, widget)
		}

		return nil
	})

	if err != nil {
		log.Printf("Failed to apply template %s: %v", template.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dashboard from template"})
		return
	}

	response := toDashboardResponse(dashboard)
	response.Widgets = toWidgetResponses(widgets)

	ctx.JSON(http.StatusCreated, gin.H{
		"dashboard":  response,
		"dataSource": toDataSourceResponse(dataSource, true),
	})
}

func buildTemplateWidget(dashboardID string, entry templates.TemplateWidget, dataConfig map[string]interface{}) (models.Widget, error) {
	config, err := json.Marshal(entry.Config)

	if err != nil {
		return models.Widget{}, err
	}

	boundConfig, err := json.Marshal(dataConfig)

	if err != nil {
		return models.Widget{}, err
	}

	position, err := json.Marshal(entry.Position)

	if err != nil {
		return models.Widget{}, err
	}

	return models.Widget{
		DashboardID: dashboardID,
		Type:        entry.Type,
		Title:       entry.Title,
		Config:      config,
		DataConfig:  boundConfig,
		Position:    position,
	}, nil
}
