package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vizboard/vizboard/internal/handlers"
	"github.com/vizboard/vizboard/internal/middleware"
	"github.com/vizboard/vizboard/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		dashboards := api.Group("/dashboards", middleware.AuthMiddleware())
		{
			dashboards.POST("", handlers.CreateDashboard)
			dashboards.GET("", handlers.ListDashboards)
			dashboards.GET("/:id", handlers.GetDashboard)
			dashboards.PUT("/:id", handlers.UpdateDashboard)
			dashboards.DELETE("/:id", handlers.DeleteDashboard)

			// Sharing endpoints
			dashboards.POST("/:id/share", handlers.EnableShare)
			dashboards.DELETE("/:id/share", handlers.DisableShare)

			// Widget endpoints
			dashboards.POST("/:id/widgets", handlers.CreateWidget)
		}

		widgets := api.Group("/widgets", middleware.AuthMiddleware())
		{
			widgets.PUT("/:id", handlers.UpdateWidget)
			widgets.DELETE("/:id", handlers.DeleteWidget)
			widgets.GET("/:id/render", handlers.RenderWidget)
		}

		dataSources := api.Group("/data-sources", middleware.AuthMiddleware())
		{
			dataSources.GET("", handlers.ListDataSources)
			dataSources.POST("", handlers.CreateDataSource)
			dataSources.GET("/:id", handlers.GetDataSource)
			dataSources.DELETE("/:id", handlers.DeleteDataSource)
		}

		templates := api.Group("/templates")
		{
			templates.GET("", handlers.ListTemplates)
			templates.POST("/:id/use", middleware.AuthMiddleware(), handlers.UseTemplate)
		}

		// Unauthenticated share path
		api.GET("/public/:token", handlers.GetPublicDashboard)
	}

	return r
}
