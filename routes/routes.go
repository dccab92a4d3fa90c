// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"matchbase-server/commons"
	"matchbase-server/handlers"
	"matchbase-server/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering API routes")

	e.GET("/health", handlers.HealthHandler)

	auth := e.Group("/api/auth")
	auth.POST("/register", handlers.RegisterHandler)
	auth.POST("/login", handlers.LoginHandler)
	auth.GET("/me", handlers.CurrentUserHandler, middlewares.VerifyAuthMiddleware())
	auth.DELETE("/profiles/:profile_id", handlers.DeleteProfileImageHandler, middlewares.VerifyAuthMiddleware())
	auth.PUT("/profiles/:profile_id/order", handlers.UpdateProfileOrderHandler, middlewares.VerifyAuthMiddleware())

	commons.Logger.Info("API routes registered successfully")
}
