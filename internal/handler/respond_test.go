package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental-platform/internal/apperr"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(apperr.Validation))
	assert.Equal(t, http.StatusNotFound, statusFor(apperr.NotFound))
	assert.Equal(t, http.StatusConflict, statusFor(apperr.Conflict))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(apperr.Connection))
	assert.Equal(t, http.StatusInternalServerError, statusFor(apperr.Persistence))
}

func TestFailWritesKindAndMessage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := fail(c, apperr.New(apperr.Conflict, "car 7 is currently in maintenance"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t,
		`{"error":"conflict","message":"car 7 is currently in maintenance"}`,
		rec.Body.String())
}

func TestParamID(t *testing.T) {
	e := echo.New()

	ctx := func(raw string) echo.Context {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues(raw)
		return c
	}

	id, ok := paramID(ctx("42"), "id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = paramID(ctx("abc"), "id")
	assert.False(t, ok)

	_, ok = paramID(ctx("-1"), "id")
	assert.False(t, ok)

	_, ok = paramID(ctx("0"), "id")
	assert.False(t, ok)
}
