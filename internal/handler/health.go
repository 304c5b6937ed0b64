package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the gateway is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
