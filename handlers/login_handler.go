// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"matchbase-server/db"
	"matchbase-server/events"
	"matchbase-server/models"
	"matchbase-server/stores"
	"matchbase-server/tokens"
	"matchbase-server/validation"

	"github.com/labstack/echo/v4"
)

// LoginHandler godoc
// @Summary      Login a user
// @Description  Authenticates by email or mobile number and returns the account with a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body  LoginRequest  true  "Login request payload"
// @Success      200 {object} AuthResponse             "Login successful"
// @Failure      400 {object} ValidationErrorResponse  "Validation failed"
// @Failure      401 {object} GenericResponse          "Invalid credentials"
// @Failure      500 {object} echo.HTTPError           "Internal server error"
// @Router       /api/auth/login [post]
func LoginHandler(c echo.Context) error {
	logger := c.Logger()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login request payload:", err)
		return echo.ErrBadRequest
	}

	login, validationErrs := validation.ValidateLogin(validation.LoginInput{
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Password:     req.Password,
	})
	if validationErrs != nil {
		logger.Errorf("Login validation failed with %d errors", len(validationErrs))
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  validationErrs,
		})
	}

	userStore := stores.NewUserStore(db.Conn)

	// Email takes precedence when both identifiers are supplied. The
	// normalized identifiers drive both the branch and the lookup, so a
	// padded or whitespace-only field behaves like its trimmed value.
	var user *models.User
	var err error
	if login.Email != "" {
		user, err = userStore.FindByEmail(login.Email)
	} else {
		user, err = userStore.FindByMobile(login.MobileNumber)
	}
	if err != nil {
		logger.Errorf("Failed to look up user: %v", err)
		return echo.ErrInternalServerError
	}

	// Unknown identifier and wrong password answer identically so the
	// response never reveals whether the account exists.
	if user == nil || !userStore.VerifyPassword(login.Password, user.Password) {
		logger.Error("Login credentials rejected.")
		return c.JSON(http.StatusUnauthorized, GenericResponse{
			Success: false,
			Message: "Invalid credentials",
		})
	}

	view, err := userStore.FindByIDWithProfiles(user.ID)
	if err != nil {
		logger.Errorf("Failed to fetch user with profiles: %v", err)
		return echo.ErrInternalServerError
	}

	events.NewPublisher().Publish(events.TypeLogin, user.ID, user.Email)

	token, err := tokens.New().Issue(user.ID)
	if err != nil {
		logger.Errorf("Token issuance failed: %v", err)
		return c.JSON(http.StatusOK, AuthResponse{
			Success: true,
			Message: "Login successful, but token generation failed. Please set JWT_SECRET in the environment.",
			Data:    AuthData{User: view},
			Error:   err.Error(),
		})
	}

	logger.Info("User logged in successfully")
	return c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		Data:    AuthData{User: view, Token: token},
	})
}
