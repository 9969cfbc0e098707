// Package repository defines sentinel errors shared across the data access
// layer. Handlers match on these to decide between redirecting to a safe
// view and rendering an inline message, without inspecting driver errors.
package repository

import "errors"

// ErrShopNotFound is returned when a shop lookup by id or slug matches no
// row. Handlers translate this into a redirect to a safe default view.
var ErrShopNotFound = errors.New("shop not found")

// ErrInvalidCredentials is returned for both an unknown admin email and a
// wrong password, so a failed login never reveals which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailExists is returned when the bootstrap insert collides with an
// existing admin email.
var ErrEmailExists = errors.New("email already exists")
