package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-platform/internal/model"
	"github.com/iliyamo/car-rental-platform/internal/rpc"
)

// CarHandler exposes the catalogue endpoints.  Reads are served through
// the gateway's response cache; every successful write calls Invalidate
// so cached listings cannot outlive a mutation.
type CarHandler struct {
	RPC        *rpc.Client
	Invalidate func(ctx context.Context)
}

// NewCarHandler constructs a CarHandler.  The invalidation hook may be nil
// when the response cache is disabled.
func NewCarHandler(client *rpc.Client, invalidate func(ctx context.Context)) *CarHandler {
	if client == nil {
		panic("nil rpc client passed to NewCarHandler")
	}
	return &CarHandler{RPC: client, Invalidate: invalidate}
}

func (h *CarHandler) evict(c echo.Context) {
	if h.Invalidate != nil {
		h.Invalidate(c.Request().Context())
	}
}

// List handles GET /api/cars.  With no query parameters it returns the
// whole catalogue; any of brand, city or availability switches to a
// filtered search.
func (h *CarHandler) List(c echo.Context) error {
	brand := c.QueryParam("brand")
	city := c.QueryParam("city")
	availability := c.QueryParam("availability")

	var (
		cars []model.Car
		err  error
	)
	if brand == "" && city == "" && availability == "" {
		cars, err = h.RPC.GetAllCars()
	} else {
		cars, err = h.RPC.SearchCars(brand, city, availability)
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cars)
}

// GetByID handles GET /api/cars/:id.
func (h *CarHandler) GetByID(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid car id")
	}
	car, err := h.RPC.GetCarByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, car)
}

// ByOwner handles GET /api/cars/owner/:ownerId.
func (h *CarHandler) ByOwner(c echo.Context) error {
	ownerID, ok := paramID(c, "ownerId")
	if !ok {
		return badRequest(c, "invalid owner id")
	}
	cars, err := h.RPC.GetCarsByOwner(ownerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cars)
}

// Create handles POST /api/cars.  The backend normalizes the daily price
// to two decimals before persisting.
func (h *CarHandler) Create(c echo.Context) error {
	var car model.Car
	if err := c.Bind(&car); err != nil {
		return badRequest(c, "invalid request body")
	}
	created, err := h.RPC.AddCar(car)
	if err != nil {
		return fail(c, err)
	}
	h.evict(c)
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/cars/:id.  The body is a full car record; the
// path id wins over any id in the body.
func (h *CarHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid car id")
	}
	var car model.Car
	if err := c.Bind(&car); err != nil {
		return badRequest(c, "invalid request body")
	}
	car.ID = id
	updated, err := h.RPC.UpdateCar(car)
	if err != nil {
		return fail(c, err)
	}
	h.evict(c)
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/cars/:id.
func (h *CarHandler) Delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid car id")
	}
	deleted, err := h.RPC.DeleteCar(id)
	if err != nil {
		return fail(c, err)
	}
	h.evict(c)
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
