package router // package router defines how HTTP routes are registered for the gateway

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-platform/internal/handler"
)

// RegisterRoutes registers the health check on the provided Echo instance.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterUsers registers the account endpoints under /api/users.
func RegisterUsers(e *echo.Echo, h *handler.UserHandler) {
	g := e.Group("/api/users")
	g.POST("/register", h.Register)
	g.POST("/authenticate", h.Authenticate)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.POST("/:id/change-password", h.ChangePassword)
}

// RegisterCars registers the catalogue endpoints under /api/cars.  The
// cache middleware is applied to the read endpoints only; writes bypass it
// and evict the namespace through the handler's invalidation hook.
func RegisterCars(e *echo.Echo, h *handler.CarHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/api/cars")
	g.GET("", h.List, cache)
	g.GET("/:id", h.GetByID, cache)
	g.GET("/owner/:ownerId", h.ByOwner, cache)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// RegisterReservations registers the booking endpoints under
// /api/reservations.  Booking reads are never cached; a stale reservation
// listing is worse than a slower one.
func RegisterReservations(e *echo.Echo, h *handler.ReservationHandler) {
	g := e.Group("/api/reservations")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.GET("/user/:userId", h.ByUser)
	g.GET("/car/:carId", h.ByCar)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Cancel)
}
