package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-platform/internal/model"
	"github.com/iliyamo/car-rental-platform/internal/rpc"
)

// ReservationHandler exposes the booking endpoints.  Bookings change car
// availability, so successful writes also evict the catalogue cache.
type ReservationHandler struct {
	RPC        *rpc.Client
	Invalidate func(ctx context.Context)
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(client *rpc.Client, invalidate func(ctx context.Context)) *ReservationHandler {
	if client == nil {
		panic("nil rpc client passed to NewReservationHandler")
	}
	return &ReservationHandler{RPC: client, Invalidate: invalidate}
}

func (h *ReservationHandler) evict(c echo.Context) {
	if h.Invalidate != nil {
		h.Invalidate(c.Request().Context())
	}
}

// Create handles POST /api/reservations.  The backend validates the
// booking: the car must exist, must not be in maintenance and must have no
// confirmed reservation overlapping the requested dates.  Rule rejections
// come back as 409, a missing car as 404.
func (h *ReservationHandler) Create(c echo.Context) error {
	var r model.Reservation
	if err := c.Bind(&r); err != nil {
		return badRequest(c, "invalid request body")
	}
	created, err := h.RPC.CreateReservation(r)
	if err != nil {
		return fail(c, err)
	}
	h.evict(c)
	return c.JSON(http.StatusCreated, created)
}

// GetByID handles GET /api/reservations/:id.
func (h *ReservationHandler) GetByID(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid reservation id")
	}
	r, err := h.RPC.GetReservationByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// List handles GET /api/reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	reservations, err := h.RPC.GetAllReservations()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, reservations)
}

// ByUser handles GET /api/reservations/user/:userId.
func (h *ReservationHandler) ByUser(c echo.Context) error {
	userID, ok := paramID(c, "userId")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	reservations, err := h.RPC.GetReservationsByUser(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, reservations)
}

// ByCar handles GET /api/reservations/car/:carId.
func (h *ReservationHandler) ByCar(c echo.Context) error {
	carID, ok := paramID(c, "carId")
	if !ok {
		return badRequest(c, "invalid car id")
	}
	reservations, err := h.RPC.GetReservationsByCar(carID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, reservations)
}

// Update handles PUT /api/reservations/:id.  The body is a full
// reservation record that replaces the stored one.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid reservation id")
	}
	var r model.Reservation
	if err := c.Bind(&r); err != nil {
		return badRequest(c, "invalid request body")
	}
	r.ID = id
	updated, err := h.RPC.UpdateReservation(r)
	if err != nil {
		return fail(c, err)
	}
	h.evict(c)
	return c.JSON(http.StatusOK, updated)
}

// Cancel handles DELETE /api/reservations/:id.  Cancelling flips the
// reservation status and releases the car back to available.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid reservation id")
	}
	cancelled, err := h.RPC.CancelReservation(id)
	if err != nil {
		return fail(c, err)
	}
	h.evict(c)
	return c.JSON(http.StatusOK, echo.Map{"cancelled": cancelled})
}
