package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/delivery/http/response"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
