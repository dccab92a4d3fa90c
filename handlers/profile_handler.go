// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"strconv"

	"matchbase-server/db"
	"matchbase-server/middlewares"
	"matchbase-server/stores"

	"github.com/labstack/echo/v4"
)

// DeleteProfileImageHandler godoc
// @Summary      Delete a profile image
// @Description  Deletes one of the authenticated user's profile images. Images owned by other accounts are indistinguishable from missing ones.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string  true  "Bearer token"
// @Param        profile_id     path    int     true  "Profile image id"
// @Success      200 {object} GenericResponse "Image deleted"
// @Failure      401 {object} echo.HTTPError  "Missing, invalid or expired token"
// @Failure      404 {object} GenericResponse "Image not found"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /api/auth/profiles/{profile_id} [delete]
func DeleteProfileImageHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	profileID, err := strconv.ParseUint(c.Param("profile_id"), 10, 64)
	if err != nil {
		logger.Error("Invalid profile id:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "profile_id must be a positive integer",
		}
	}

	deleted, err := stores.NewProfileStore(db.Conn).Delete(uint(profileID), user.ID)
	if err != nil {
		logger.Errorf("Failed to delete profile image: %v", err)
		return echo.ErrInternalServerError
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, GenericResponse{
			Success: false,
			Message: "Profile image not found",
		})
	}

	logger.Info("Profile image deleted")
	return c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Profile image deleted",
	})
}

// UpdateProfileOrderHandler godoc
// @Summary      Reorder a profile image
// @Description  Moves one of the authenticated user's profile images to a new display position.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization  header  string                     true  "Bearer token"
// @Param        profile_id     path    int                        true  "Profile image id"
// @Param        orderRequest   body    UpdateProfileOrderRequest  true  "New display position"
// @Success      200 {object} GenericResponse "Order updated"
// @Failure      401 {object} echo.HTTPError  "Missing, invalid or expired token"
// @Failure      404 {object} GenericResponse "Image not found"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /api/auth/profiles/{profile_id}/order [put]
func UpdateProfileOrderHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	profileID, err := strconv.ParseUint(c.Param("profile_id"), 10, 64)
	if err != nil {
		logger.Error("Invalid profile id:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "profile_id must be a positive integer",
		}
	}

	var req UpdateProfileOrderRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid order request payload:", err)
		return echo.ErrBadRequest
	}

	updated, err := stores.NewProfileStore(db.Conn).UpdateOrder(uint(profileID), user.ID, req.ImageOrder)
	if err != nil {
		logger.Errorf("Failed to update profile image order: %v", err)
		return echo.ErrInternalServerError
	}
	if !updated {
		return c.JSON(http.StatusNotFound, GenericResponse{
			Success: false,
			Message: "Profile image not found",
		})
	}

	logger.Info("Profile image order updated")
	return c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Profile image order updated",
	})
}
