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

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RequestID       *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
	requestID       *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
		requestID:       params.RequestID,
	}
}

// RegisterRoutes sets up all the API routes for the application. Paths and
// methods mirror the routes the storefront client is hard-wired to call.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	signedIn := r.authMiddleware.RequireSignIn
	admin := r.authMiddleware.IsAdmin

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.GET("/test", r.authHandler.Test, signedIn, admin)
		authGroup.GET("/user-auth", r.authHandler.UserAuth, signedIn)
		authGroup.GET("/admin-auth", r.authHandler.AdminAuth, signedIn, admin)
		authGroup.PUT("/profile", r.authHandler.UpdateProfile, signedIn)
		authGroup.GET("/orders", r.orderHandler.GetOrders, signedIn)
		authGroup.GET("/all-orders", r.orderHandler.GetAllOrders, signedIn, admin)
		authGroup.PUT("/order-status/:orderId", r.orderHandler.UpdateOrderStatus, signedIn, admin)
	}

	userGroup := api.Group("/user")
	{
		userGroup.GET("/all-users", r.userHandler.GetAllUsers, signedIn, admin)
	}

	categoryGroup := api.Group("/category")
	{
		categoryGroup.POST("/create-category", r.categoryHandler.CreateCategory, signedIn, admin)
		categoryGroup.PUT("/update-category/:id", r.categoryHandler.UpdateCategory, signedIn, admin)
		categoryGroup.GET("/get-category", r.categoryHandler.GetAllCategories)
		categoryGroup.GET("/single-category/:slug", r.categoryHandler.GetCategory)
		categoryGroup.DELETE("/delete-category/:id", r.categoryHandler.DeleteCategory, signedIn, admin)
	}

	productGroup := api.Group("/product")
	{
		productGroup.POST("/create-product", r.productHandler.CreateProduct, signedIn, admin)
		productGroup.PUT("/update-product/:pid", r.productHandler.UpdateProduct, signedIn, admin)
		productGroup.DELETE("/delete-product/:pid", r.productHandler.DeleteProduct, signedIn, admin)
		productGroup.GET("/get-product", r.productHandler.GetProducts)
		productGroup.GET("/get-product/:slug", r.productHandler.GetProduct)
		productGroup.GET("/product-photo/:pid", r.productHandler.GetProductPhoto)
		productGroup.POST("/product-filters", r.productHandler.FilterProducts)
		productGroup.GET("/product-count", r.productHandler.ProductCount)
		productGroup.GET("/product-list/:page", r.productHandler.ProductList)
		productGroup.GET("/search/:keyword", r.productHandler.SearchProducts)
		productGroup.GET("/related-product/:pid/:cid", r.productHandler.RelatedProducts)
		productGroup.GET("/product-category/:slug", r.productHandler.ProductsByCategory)
	}
}
