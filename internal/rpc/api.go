// Package rpc carries the remote-object call boundary between the
// gateway and the backend service.  The backend registers the full
// business surface under a configurable service name on a TCP endpoint
// using the JSON-RPC codec; the gateway holds a lazily (re)connected
// client handle to it.  The wire codec is an implementation detail:
// both sides only exchange the request types below and taxonomy errors.
package rpc

// Credentials identifies a user for authentication.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChange carries a password rotation request.
type PasswordChange struct {
	UserID          int64  `json:"userId"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CarSearchFilter filters the catalogue.  Every field is optional; empty
// fields do not constrain the search.
type CarSearchFilter struct {
	Brand        string `json:"brand"`
	City         string `json:"city"`
	Availability string `json:"availability"`
}

// Empty is the argument for operations that take no input.
type Empty struct{}
