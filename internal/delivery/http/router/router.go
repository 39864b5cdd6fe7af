// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Login and the reset flow are public, the rest need a token.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	// Registration is open, listings are restricted to staff accounts.
	profileGroup := e.Group("/profiles")
	{
		profileGroup.POST("/user", r.profileHandler.CreateUserProfile)
		profileGroup.POST("/admin", r.profileHandler.CreateAdminProfile)
		profileGroup.POST("/business", r.profileHandler.CreateBusinessProfile)

		profileGroup.GET("/user", r.profileHandler.ListUserProfiles,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireStaff)
		profileGroup.GET("/admin", r.profileHandler.ListAdminProfiles,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireStaff)
		profileGroup.GET("/business", r.profileHandler.ListBusinessProfiles,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireStaff)

		profileGroup.GET("/me", r.profileHandler.GetOwnProfile, r.authMiddleware.Authenticate)
		profileGroup.PATCH("/me", r.profileHandler.UpdateOwnProfile, r.authMiddleware.Authenticate)
	}

	// Account administration
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	accountGroup.Use(r.authMiddleware.RequireStaff)
	{
		accountGroup.PATCH("/:id/active", r.accountHandler.SetAccountActive)
	}
}
