package auth

import "database/sql"

// Role is the numeric role identifier stored on a user row and carried in
// the token's "role" claim. RoleNone (0) stands for a NULL role column: an
// account that was never assigned a role and is treated as a customer.
type Role int

const (
	RoleNone     Role = 0
	RoleAdmin    Role = 1
	RoleWaiter   Role = 2
	RoleKitchen  Role = 3
	RoleDelivery Role = 4
	RoleClient   Role = 5
	RoleCashier  Role = 6
)

// Permission tags attached to roles via the static map below.
const (
	PermRead = "read"
	PermCRUD = "crud"
)

// rolePermissions is fixed at process start. Roles without an entry resolve
// to the empty set, so unknown roles are denied everything.
var rolePermissions = map[Role]map[string]bool{
	RoleAdmin:    {PermRead: true, PermCRUD: true},
	RoleWaiter:   {PermCRUD: true},
	RoleKitchen:  {PermCRUD: true},
	RoleDelivery: {PermCRUD: true},
	RoleCashier:  {PermCRUD: true},
	RoleClient:   {PermRead: true},
}

// EmployeeRoles is the coarse grouping of operational staff roles.
var EmployeeRoles = []Role{RoleAdmin, RoleWaiter, RoleKitchen, RoleDelivery, RoleCashier}

// CustomerRoles covers clients and accounts with no role assigned.
var CustomerRoles = []Role{RoleClient, RoleNone}

// KnownRole reports whether id names a role accepted at registration.
func KnownRole(r Role) bool {
	_, ok := rolePermissions[r]
	return ok
}

// PermissionsFor returns the permission set of a role. The result is never
// nil and must not be mutated by callers.
func PermissionsFor(r Role) map[string]bool {
	if p, ok := rolePermissions[r]; ok {
		return p
	}
	return map[string]bool{}
}

// HasPermission reports whether the role carries the required tag.
func HasPermission(r Role, required string) bool {
	return PermissionsFor(r)[required]
}

// IsMember reports whether the role is in the allowed set.
func IsMember(r Role, allowed []Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// NormalizeRole is the single conversion point for the loosely typed role
// values that appear at the edges: NULL columns scanned into sql.NullInt64,
// JSON numbers decoded from token claims as float64, and plain ints from
// request payloads. Anything absent or unrecognized becomes RoleNone.
func NormalizeRole(v any) Role {
	switch t := v.(type) {
	case nil:
		return RoleNone
	case Role:
		return t
	case int:
		return Role(t)
	case int64:
		return Role(t)
	case float64:
		return Role(int(t))
	case sql.NullInt64:
		if !t.Valid {
			return RoleNone
		}
		return Role(t.Int64)
	case *int:
		if t == nil {
			return RoleNone
		}
		return Role(*t)
	}
	return RoleNone
}
