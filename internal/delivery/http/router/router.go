// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"
)

// RouterParams holds every handler and middleware the router mounts,
// injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CustomerHandler *handler.CustomerHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	customerHandler *handler.CustomerHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		customerHandler: params.CustomerHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Everything
// but /health and /auth requires a valid access token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signUp", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forget-password", r.authHandler.ForgotPassword)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
	}

	customerGroup := e.Group("/customer")
	customerGroup.Use(r.authMiddleware.Authenticate)
	{
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.GET("/:id", r.customerHandler.Get)
		customerGroup.PUT("/:id", r.customerHandler.Update)
		customerGroup.DELETE("/:id", r.customerHandler.Delete)
	}

	productGroup := e.Group("/product")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}

	invoiceGroup := e.Group("/invoice")
	invoiceGroup.Use(r.authMiddleware.Authenticate)
	{
		invoiceGroup.POST("", r.orderHandler.Create)
		invoiceGroup.GET("", r.orderHandler.List)
		invoiceGroup.GET("/totalSales", r.orderHandler.TotalSales)
		invoiceGroup.GET("/productSales", r.orderHandler.ProductSales)
		invoiceGroup.GET("/:id", r.orderHandler.Get)
		invoiceGroup.PUT("/:id", r.orderHandler.Update)
		invoiceGroup.DELETE("/:id", r.orderHandler.Delete)
	}
}
