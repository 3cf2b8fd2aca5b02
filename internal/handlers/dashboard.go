package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vizboard/vizboard/db"
	"github.com/vizboard/vizboard/internal/models"
	"github.com/vizboard/vizboard/internal/utils"
	"gorm.io/gorm"
)

type CreateDashboardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func CreateDashboard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateDashboardRequest

	if err := ctx.BindJSON(&body); err != nil || strings.TrimSpace(body.Name) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	dashboard := models.Dashboard{
		UserID:      userID,
		Name:        body.Name,
		Description: body.Description,
	}

	if err := db.DB.Create(&dashboard).Error; err != nil {
		log.Printf("Failed to create dashboard: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dashboard"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"dashboard": toDashboardResponse(dashboard)})
}

func ListDashboards(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var dashboards []models.Dashboard

	if err := db.DB.Where("user_id = ?", userID).Order("updated_at DESC").Find(&dashboards).Error; err != nil {
		log.Printf("Failed to retrieve dashboards: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboards"})
		return
	}

	counts := widgetCounts(dashboards)

	response := make([]DashboardResponse, 0, len(dashboards))

	for _, dashboard := range dashboards {
		r := toDashboardResponse(dashboard)
		count := counts[dashboard.ID]
		r.WidgetCount = &count
		response = append(response, r)
	}

	ctx.JSON(http.StatusOK, gin.H{"dashboards": response})
}

func widgetCounts(dashboards []models.Dashboard) map[string]int64 {
	counts := make(map[string]int64, len(dashboards))

	if len(dashboards) == 0 {
		return counts
	}

	ids := make([]string, len(dashboards))

	for i, d := range dashboards {
		ids[i] = d.ID
	}

	var rows []struct {
		DashboardID string
		Count       int64
	}

	if err := db.DB.Model(&models.Widget{}).
		Select("dashboard_id, COUNT(*) AS count").
		Where("dashboard_id IN ?", ids).
		Group("dashboard_id").
		Scan(&rows).Error; err != nil {
		log.Printf("Failed to count widgets: %v", err)
		return counts
	}

	for _, row := range rows {
		counts[row.DashboardID] = row.Count
	}

	return counts
}

func GetDashboard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	dashboardID := ctx.Param("id")

	var dashboard models.Dashboard

	if err := db.DB.Preload("Widgets", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC")
	}).Where("id = ? AND user_id = ?", dashboardID, userID).First(&dashboard).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found"})
		} else {
			log.Printf("Failed to retrieve dashboard: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		}
		return
	}

	response := toDashboardResponse(dashboard)
	response.Widgets = toWidgetResponses(dashboard.Widgets)

	ctx.JSON(http.StatusOK, gin.H{"dashboard": response})
}

func UpdateDashboard(ctx *gin.Context) {
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

	// Fields are replaced only when present in the body. A null
	// description clears the stored value; name ignores null and empty.
	var body map[string]json.RawMessage

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if raw, ok := body["name"]; ok {
		var name string

		if err := json.Unmarshal(raw, &name); err == nil && strings.TrimSpace(name) != "" {
			updates["name"] = name
		}
	}

	if raw, ok := body["description"]; ok {
		var description *string

		if err := json.Unmarshal(raw, &description); err == nil {
			if description == nil {
				updates["description"] = ""
			} else {
				updates["description"] = *description
			}
		}
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&dashboard).Updates(updates).Error; err != nil {
			log.Printf("Failed to update dashboard: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dashboard"})
			return
		}

		if err := db.DB.First(&dashboard, "id = ?", dashboard.ID).Error; err != nil {
			log.Printf("Failed to refresh dashboard: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dashboard"})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"dashboard": toDashboardResponse(dashboard)})
}

func DeleteDashboard(ctx *gin.Context) {
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

	// Widgets go with their dashboard, in one transaction so a failure
	// cannot strand orphans.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dashboard_id = ?", dashboard.ID).Delete(&models.Widget{}).Error; err != nil {
			return err
		}

		return tx.Delete(&dashboard).Error
	})

	if err != nil {
		log.Printf("Failed to delete dashboard: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dashboard"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
