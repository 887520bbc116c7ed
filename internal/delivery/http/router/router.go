// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	SessionHandler    *handler.SessionHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	sessionHandler    *handler.SessionHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		checkoutHandler:   params.CheckoutHandler,
		sessionHandler:    params.SessionHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog browsing is session-less and read-only
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/featured", r.catalogHandler.FeaturedProducts)

	// Session-scoped routes: the middleware issues the cookie and
	// materializes the cart state
	sessionGroup := e.Group("")
	sessionGroup.Use(r.sessionMiddleware.EnsureSession)
	{
		sessionGroup.GET("/session", r.sessionHandler.GetSession)
		sessionGroup.GET("/cart", r.cartHandler.GetCart)
	}

	// Mutating routes additionally require the anti-forgery token
	mutatingGroup := e.Group("")
	mutatingGroup.Use(r.sessionMiddleware.EnsureSession)
	mutatingGroup.Use(r.sessionMiddleware.VerifyCSRF)
	{
		mutatingGroup.POST("/cart", r.cartHandler.MutateCart)
		mutatingGroup.POST("/coupon", r.cartHandler.ApplyCoupon)
		mutatingGroup.POST("/checkout", r.checkoutHandler.Checkout)
	}
}
