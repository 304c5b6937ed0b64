// Package repository implements the persistence gateway over MySQL.  Each
// entity gets a small repo type with create/find/update operations built
// on database/sql.  Sentinel errors defined here let the service layer
// distinguish an absent row from a store failure without depending on
// driver-specific errors.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert violates the unique email
// constraint on users.
var ErrDuplicateEmail = errors.New("email already registered")
