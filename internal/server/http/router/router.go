package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/handlers"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CanteenFacade, sessions middleware.SessionResolver, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	menuHandler := handlers.NewMenuHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	staffHandler := handlers.NewStaffHandler(facade)

	api := engine.Group("/api")
	api.POST("/login", authHandler.Login)
	api.GET("/menu", menuHandler.List)

	authed := api.Group("")
	authed.Use(middleware.SessionRequired(sessions))
	authed.GET("/auth/user", authHandler.CurrentUser)
	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.POST("/orders/:id/cancel", orderHandler.Cancel)

	staff := authed.Group("/staff")
	staff.Use(middleware.StaffOnly())
	staff.GET("/orders", staffHandler.ActiveOrders)
	staff.PATCH("/orders/:id/status", staffHandler.UpdateStatus)
	staff.PATCH("/menu/:id/availability", staffHandler.SetAvailability)
	staff.GET("/analytics/today", staffHandler.TodayStats)

	return engine
}
