package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the liveness probe body
type HealthResponse struct {
	OK        bool   `json:"ok" example:"true"`
	Timestamp string `json:"timestamp" example:"2025-09-07T12:00:00Z"`
}

// HealthCheck godoc
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/healthz [get]
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		OK:        true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
