// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"matchbase-server/db"
	"matchbase-server/models"
	"matchbase-server/stores"
	"matchbase-server/tokens"

	"github.com/labstack/echo/v4"
)

// VerifyAuthMiddleware authenticates the bearer token and loads the
// account it asserts. Missing header, bad signature, expiry and a
// vanished account all produce the same 401; the reason is never
// disclosed to the caller.
func VerifyAuthMiddleware() func(echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger := c.Logger()

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Error("Authorization header missing or invalid.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Bearer token is required",
				}
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			userID, err := tokens.New().Verify(tokenString)
			if err != nil {
				logger.Error("Token verification failed.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired authentication token, please login again",
				}
			}

			user, err := stores.NewUserStore(db.Conn).FindByID(userID)
			if err != nil {
				logger.Errorf("Failed to load authenticated user: %v", err)
				return echo.ErrInternalServerError
			}
			if user == nil {
				logger.Error("Token references a missing account.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired authentication token, please login again",
				}
			}

			c.Set("user", user)
			return next(c)
		}
	}
}

func GetAuthenticatedUser(c echo.Context) (*models.User, error) {
	if user, ok := c.Get("user").(*models.User); ok {
		return user, nil
	}
	return nil, errors.New("no authenticated user found")
}
