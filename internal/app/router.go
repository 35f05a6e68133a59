// internal/app/router.go
package app

import (
	assetHandler "secad-service/internal/handlers/asset"
	authHandler "secad-service/internal/handlers/auth"
	chatHandler "secad-service/internal/handlers/chat"
	eventHandler "secad-service/internal/handlers/event"
	reportHandler "secad-service/internal/handlers/report"
	vehicleHandler "secad-service/internal/handlers/vehicle"
	"secad-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	VehicleHandler *vehicleHandler.VehicleHandler
	AssetHandler   *assetHandler.AssetHandler
	EventHandler   *eventHandler.EventHandler
	ReportHandler  *reportHandler.ReportHandler
	ChatHandler    *chatHandler.ChatHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health & Metrics ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ==================== Auth ====================
	api.POST("/auth/login", h.AuthHandler.Login)

	// ==================== Vehicles ====================
	vehicles := api.Group("/vehicles")
	vehicles.Use(h.AuthMiddleware.Auth())
	{
		vehicles.GET("", h.VehicleHandler.ListVehicles)
		vehicles.GET("/search", h.VehicleHandler.SearchVehicles)
		vehicles.GET("/:id", h.VehicleHandler.GetVehicle)
		vehicles.POST("", h.VehicleHandler.CreateVehicle)
		vehicles.PUT("/:id", h.VehicleHandler.UpdateVehicle)
		vehicles.PUT("/:id/release", h.VehicleHandler.SetReleaseDate)
		vehicles.DELETE("/:id", h.VehicleHandler.DeleteVehicle)
	}

	// ==================== Assets ====================
	assets := api.Group("/assets")
	assets.Use(h.AuthMiddleware.Auth())
	{
		assets.GET("", h.AssetHandler.ListAssets)
		assets.GET("/search", h.AssetHandler.SearchAssets)
		assets.GET("/descriptions", h.AssetHandler.Descriptions)
		assets.GET("/:id", h.AssetHandler.GetAsset)
		assets.POST("", h.AssetHandler.CreateAsset)
		assets.PUT("/:id", h.AssetHandler.UpdateAsset)
		assets.POST("/:id/transfer", h.AssetHandler.TransferAsset)
		assets.POST("/:id/remove", h.AssetHandler.RemoveAsset)
	}

	// ==================== Calendar ====================
	events := api.Group("/events")
	events.Use(h.AuthMiddleware.Auth())
	{
		events.GET("", h.EventHandler.ListEvents)
		events.GET("/:id", h.EventHandler.GetEvent)
		events.POST("", h.EventHandler.CreateEvent)
		events.PUT("/:id", h.EventHandler.UpdateEvent)
		events.DELETE("/:id", h.EventHandler.DeleteEvent)
	}

	// ==================== Reports ====================
	reports := api.Group("/reports")
	reports.Use(h.AuthMiddleware.Auth())
	{
		reports.GET("/vehicles/stats", h.ReportHandler.VehicleStats)
		reports.GET("/vehicles/pdf", h.ReportHandler.VehiclePDF)
		reports.GET("/vehicles/xlsx", h.ReportHandler.VehicleXLSX)
		reports.GET("/vehicles/chart/:dimension", h.ReportHandler.VehicleChart)
		reports.GET("/assets/stats", h.ReportHandler.AssetStats)
		reports.GET("/assets/pdf", h.ReportHandler.AssetPDF)
		reports.GET("/assets/xlsx", h.ReportHandler.AssetXLSX)
		reports.GET("/assets/chart/:dimension", h.ReportHandler.AssetChart)
	}

	// ==================== Chat Assistant ====================
	chat := api.Group("/chat")
	chat.Use(h.AuthMiddleware.Auth())
	{
		chat.POST("", h.ChatHandler.Ask)
		chat.POST("/refresh", h.ChatHandler.Refresh)
	}
	// Websocket clients pass the token as a query parameter.
	r.GET("/ws/chat", h.AuthMiddleware.Auth(), h.ChatHandler.Session)
}
