// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// swagger:model HealthResponse
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthHandler godoc
// @Summary      Health check
// @Tags         monitoring
// @Produce      json
// @Success      200 {object} HealthResponse "Server is running"
// @Router       /health [get]
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
