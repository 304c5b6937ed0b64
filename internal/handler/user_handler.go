package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-platform/internal/model"
	"github.com/iliyamo/car-rental-platform/internal/rpc"
)

// UserHandler exposes the account endpoints.  Every method forwards the
// request to the backend service over RPC and translates the returned
// failure kind into an HTTP status.
type UserHandler struct {
	RPC *rpc.Client
}

// NewUserHandler constructs a UserHandler.  The client must be non-nil.
func NewUserHandler(client *rpc.Client) *UserHandler {
	if client == nil {
		panic("nil rpc client passed to NewUserHandler")
	}
	return &UserHandler{RPC: client}
}

// Register handles POST /api/users/register.  The body is a full user
// record; the backend rejects duplicate emails with 409.
func (h *UserHandler) Register(c echo.Context) error {
	var u model.User
	if err := c.Bind(&u); err != nil {
		return badRequest(c, "invalid request body")
	}
	created, err := h.RPC.RegisterUser(u)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Authenticate handles POST /api/users/authenticate.  It returns the full
// user record on success and 409 when the credentials do not match.
func (h *UserHandler) Authenticate(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "email and password are required")
	}
	u, err := h.RPC.AuthenticateUser(body.Email, body.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// GetByID handles GET /api/users/:id.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	u, err := h.RPC.GetUserByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// List handles GET /api/users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.RPC.GetAllUsers()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Update handles PUT /api/users/:id.  The body is a partial record; absent
// fields keep their stored values, and an absent or empty password never
// overwrites the stored one.
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	var patch model.UserPatch
	if err := c.Bind(&patch); err != nil {
		return badRequest(c, "invalid request body")
	}
	patch.ID = id
	updated, err := h.RPC.UpdateUser(patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// ChangePassword handles POST /api/users/:id/change-password.  The current
// password must match the stored one or the request is rejected with 409.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CurrentPassword == "" || body.NewPassword == "" {
		return badRequest(c, "currentPassword and newPassword are required")
	}
	ok, err := h.RPC.ChangePassword(id, body.CurrentPassword, body.NewPassword)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"changed": ok})
}
