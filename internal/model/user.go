package model

import (
	"github.com/iliyamo/restaurant-ops/internal/auth"
)

// User represents an application user record as stored in the `users`
// table. The login key is the DNI (national identity number), which is
// unique and distinct from the email. PasswordHash is nil for passwordless
// guest accounts; such accounts can never log in with credentials but may
// still be referenced by orders. RoleID is RoleNone when the role column is
// NULL.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	DNI          – unique national-ID-like login key.
//	FullName     – display name.
//	Email        – unique contact email.
//	Phone        – optional contact phone.
//	PasswordHash – bcrypt hashed password (nil when passwordless).
//	RoleID       – role identifier, RoleNone when unassigned.
type User struct {
	ID           uint64
	DNI          string
	FullName     string
	Email        string
	Phone        *string
	PasswordHash *string
	RoleID       auth.Role
}
