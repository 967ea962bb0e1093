// Package repository contains data access logic separated from HTTP
// handlers. This file defines sentinel errors shared across repositories so
// higher layers can distinguish failure scenarios: ErrDuplicate maps to an
// HTTP 409/400-class response, the per-entity not-found sentinels map to
// 404.
package repository

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when an insert or update violates a unique
// constraint, such as registering an already-used email or DNI.
var ErrDuplicate = errors.New("duplicate entry")

// Per-entity not-found sentinels. Handlers translate these into 404
// responses; the auth middleware treats a missing user as an invalid token.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubCategoryNotFound = errors.New("sub-category not found")
	ErrTableNotFound       = errors.New("table not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

// isDuplicateKey reports whether err is a MySQL duplicate-key violation
// (error 1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
