// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"matchbase-server/db"
	"matchbase-server/middlewares"
	"matchbase-server/stores"

	"github.com/labstack/echo/v4"
)

// CurrentUserHandler godoc
// @Summary      Get current user
// @Description  Returns the authenticated account with its ordered profile images.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token"
// @Success      200 {object} UserResponse    "User retrieved"
// @Failure      401 {object} echo.HTTPError  "Missing, invalid or expired token"
// @Failure      404 {object} GenericResponse "Account no longer exists"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /api/auth/me [get]
func CurrentUserHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	view, err := stores.NewUserStore(db.Conn).FindByIDWithProfiles(user.ID)
	if err != nil {
		logger.Errorf("Failed to fetch user with profiles: %v", err)
		return echo.ErrInternalServerError
	}
	if view == nil {
		// Authenticated id but the row is gone: distinct from an auth
		// failure, this is a plain not-found.
		logger.Error("Authenticated account no longer exists.")
		return c.JSON(http.StatusNotFound, GenericResponse{
			Success: false,
			Message: "User not found",
		})
	}

	return c.JSON(http.StatusOK, UserResponse{
		Success: true,
		Data:    UserData{User: view},
	})
}
