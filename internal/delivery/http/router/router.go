// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fieldforce/internal/delivery/http/middleware"
	"fieldforce/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TrackingHandler *handler.TrackingHandler
	VisitHandler    *handler.VisitHandler
	OutletHandler   *handler.OutletHandler
	StockHandler    *handler.StockHandler
	OrderHandler    *handler.OrderHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	trackingHandler *handler.TrackingHandler
	visitHandler    *handler.VisitHandler
	outletHandler   *handler.OutletHandler
	stockHandler    *handler.StockHandler
	orderHandler    *handler.OrderHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		trackingHandler: params.TrackingHandler,
		visitHandler:    params.VisitHandler,
		outletHandler:   params.OutletHandler,
		stockHandler:    params.StockHandler,
		orderHandler:    params.OrderHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Tracking session routes (sales reps only)
	trackingGroup := e.Group("/tracking")
	trackingGroup.Use(r.authMiddleware.Authenticate)
	{
		trackingGroup.POST("/session", r.trackingHandler.StartSession)
		trackingGroup.DELETE("/session", r.trackingHandler.StopSession)
		trackingGroup.POST("/locations", r.trackingHandler.ReportLocation)
		trackingGroup.GET("/outlets", r.trackingHandler.ActiveOutlets)
		trackingGroup.GET("/status", r.trackingHandler.Status)
	}

	// Visit history
	visitGroup := e.Group("/visits")
	visitGroup.Use(r.authMiddleware.Authenticate)
	{
		visitGroup.GET("", r.visitHandler.ListVisits)
	}

	// Outlets
	outletGroup := e.Group("/outlets")
	outletGroup.Use(r.authMiddleware.Authenticate)
	{
		outletGroup.GET("", r.outletHandler.ListOutlets)
		outletGroup.GET("/:id", r.outletHandler.GetOutlet)
		outletGroup.PUT("/:id/address", r.outletHandler.UpdateOutletAddress)
	}

	// Catalog for the order drawer
	stockGroup := e.Group("/stock")
	stockGroup.Use(r.authMiddleware.Authenticate)
	{
		stockGroup.GET("", r.stockHandler.ListStock)
	}

	// Orders
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/quote", r.orderHandler.QuoteCart)
		orderGroup.POST("", r.orderHandler.SubmitOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/payment-qr", r.orderHandler.PaymentQR)
	}

	// Device registration for push notifications
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
