package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vizboard/vizboard/db"
	"github.com/vizboard/vizboard/internal/demodata"
	"github.com/vizboard/vizboard/internal/ingest"
	"github.com/vizboard/vizboard/internal/models"
	"github.com/vizboard/vizboard/internal/utils"
	"gorm.io/gorm"
)

type CreateDemoDataSourceRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

func ListDataSources(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var dataSources []models.DataSource

	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&dataSources).Error; err != nil {
		log.Printf("Failed to retrieve data sources: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve data sources"})
		return
	}

	response := make([]DataSourceResponse, 0, len(dataSources))

	for _, ds := range dataSources {
		response = append(response, toDataSourceResponse(ds, false))
	}

	ctx.JSON(http.StatusOK, gin.H{"dataSources": response})
}

// CreateDataSource accepts either a multipart CSV upload or a JSON body
// selecting one of the built-in demo tables.
func CreateDataSource(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if strings.Contains(ctx.GetHeader("Content-Type"), "multipart/form-data") {
		createFromUpload(ctx, userID)
		return
	}

	createFromDemo(ctx, userID)
}

func createFromUpload(ctx *gin.Context, userID string) {
	fileHeader, err := ctx.FormFile("file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	name := ctx.PostForm("name")

	if name == "" {
		name = fileHeader.Filename
	}

	file, err := fileHeader.Open()

	if err != nil {
		log.Printf("Failed to open upload: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	dataset, err := ingest.ParseCSV(file)

	if err != nil {
		var parseErr *ingest.ParseError

		if errors.As(err, &parseErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse CSV", "details": parseErr})
			return
		}

		log.Printf("Failed to parse upload: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	columns, err := json.Marshal(dataset.Columns)

	if err != nil {
		log.Printf("Failed to encode columns: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rows, err := json.Marshal(dataset.Rows)

	if err != nil {
		log.Printf("Failed to encode rows: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	dataSource := models.DataSource{
		UserID:  userID,
		Name:    name,
		Type:    "csv",
		Columns: columns,
		Rows:    rows,
		Config:  []byte("{}"),
	}

	if err := db.DB.Create(&dataSource).Error; err != nil {
		log.Printf("Failed to create data source: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create data source"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"dataSource": toDataSourceResponse(dataSource, true)})
}

func createFromDemo(ctx *gin.Context, userID string) {
	var body CreateDemoDataSourceRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if body.Type != "demo" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data source type"})
		return
	}

	table, ok := demodata.Lookup(body.Name)

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid demo data type"})
		return
	}

	dataSource, err := createDemoDataSource(db.DB, userID, body.Name, table)

	if err != nil {
		log.Printf("Failed to create data source: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create data source"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"dataSource": toDataSourceResponse(dataSource, true)})
}

// createDemoDataSource copies a demo table verbatim into a new record.
// Shared with template use, which runs it inside a transaction.
func createDemoDataSource(tx *gorm.DB, userID, demoKey string, table demodata.Table) (models.DataSource, error) {
	columns, err := json.Marshal(table.Columns)

	if err != nil {
		return models.DataSource{}, err
	}

	rows, err := json.Marshal(table.Rows)

	if err != nil {
		return models.DataSource{}, err
	}

	config, err := json.Marshal(map[string]string{"demoType": demoKey})

	if err != nil {
		return models.DataSource{}, err
	}

	dataSource := models.DataSource{
		UserID:  userID,
		Name:    table.Name,
		Type:    "demo",
		Columns: columns,
		Rows:    rows,
		Config:  config,
	}

	if err := tx.Create(&dataSource).Error; err != nil {
		return models.DataSource{}, err
	}

	return dataSource, nil
}

func GetDataSource(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var dataSource models.DataSource

	if err := db.DB.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&dataSource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Data source not found"})
		} else {
			log.Printf("Failed to retrieve data source: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve data source"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"dataSource": toDataSourceResponse(dataSource, true)})
}

func DeleteDataSource(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var dataSource models.DataSource

	if err := db.DB.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&dataSource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Data source not found"})
		} else {
			log.Printf("Failed to retrieve data source: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve data source"})
		}
		return
	}

	if err := db.DB.Delete(&dataSource).Error; err != nil {
		log.Printf("Failed to delete data source: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete data source"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
