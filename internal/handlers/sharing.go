package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/vizboard/vizboard/db"
	"github.com/vizboard/vizboard/internal/models"
	"github.com/vizboard/vizboard/internal/share"
	"github.com/vizboard/vizboard/internal/utils"
	"gorm.io/gorm"
)

func EnableShare(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var dashboard models.Dashboard

	if err := db.DB.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&dashboard).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found"})
		} else {
			log.Printf("Failed to retrieve dashboard: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		}
		return
	}

	token, err := share.NewToken()

	if err != nil {
		log.Printf("Failed to generate share token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	dashboard.ShareToken = &token
	dashboard.IsPublic = true

	if err := db.DB.Save(&dashboard).Error; err != nil {
		log.Printf("Failed to share dashboard: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share dashboard"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"shareToken": token,
		"shareUrl":   os.Getenv("APP_URL") + "/share/" + token,
		"dashboard":  toDashboardResponse(dashboard),
	})
}

func DisableShare(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var dashboard models.Dashboard

	if err := db.DB.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&dashboard).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Dashboard not found"})
		} else {
			log.Printf("Failed to retrieve dashboard: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		}
		return
	}

	// The old token is gone for good; revoking and re-sharing mints a
	// fresh one.
	if err := db.DB.Model(&dashboard).Updates(map[string]interface{}{
		"share_token": nil,
		"is_public":   false,
	}).Error; err != nil {
		log.Printf("Failed to revoke share: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke share link"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
