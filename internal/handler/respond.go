package handler // declare the package name; contains HTTP handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-platform/internal/apperr"
)

// statusFor translates a failure kind into an HTTP status.  The mapping is
// fixed: rejected input is 400, missing entities 404, business-rule
// rejections 409, an unreachable backend 503 and everything else 500.
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Conflict:
		return http.StatusConflict
	case apperr.Connection:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the JSON error body for a backend failure.  The body keeps
// the machine-readable kind alongside the human-readable message so API
// clients can branch without parsing text.
func fail(c echo.Context, err error) error {
	kind := apperr.KindOf(err)
	msg := err.Error()
	var e *apperr.Error
	if errors.As(err, &e) {
		msg = e.Message()
	}
	return c.JSON(statusFor(kind), echo.Map{"error": string(kind), "message": msg})
}

// paramID parses a positive integer path parameter.
func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": string(apperr.Validation), "message": msg})
}
