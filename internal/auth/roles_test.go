package auth

import (
	"database/sql"
	"testing"
)

func TestPermissionsFor_UnknownRoleIsEmpty(t *testing.T) {
	if perms := PermissionsFor(Role(999)); len(perms) != 0 {
		t.Fatalf("expected empty permission set for unknown role, got %v", perms)
	}
	if perms := PermissionsFor(RoleNone); len(perms) != 0 {
		t.Fatalf("expected empty permission set for RoleNone, got %v", perms)
	}
}

func TestHasPermission_Map(t *testing.T) {
	cases := []struct {
		role Role
		tag  string
		want bool
	}{
		{RoleAdmin, PermRead, true},
		{RoleAdmin, PermCRUD, true},
		{RoleClient, PermRead, true},
		{RoleClient, PermCRUD, false},
		{RoleWaiter, PermCRUD, true},
		{RoleKitchen, PermCRUD, true},
		{RoleDelivery, PermCRUD, true},
		{RoleCashier, PermCRUD, true},
		{Role(999), PermRead, false},
	}
	for _, tc := range cases {
		if got := HasPermission(tc.role, tc.tag); got != tc.want {
			t.Fatalf("HasPermission(%d, %q) = %v, want %v", tc.role, tc.tag, got, tc.want)
		}
	}
}

func TestIsMember(t *testing.T) {
	if IsMember(RoleClient, EmployeeRoles) {
		t.Fatalf("client must not be in the employee set")
	}
	if !IsMember(RoleCashier, EmployeeRoles) {
		t.Fatalf("cashier must be in the employee set")
	}
	// Accounts with no role assigned default to customers.
	if !IsMember(RoleNone, CustomerRoles) {
		t.Fatalf("RoleNone must be in the customer set")
	}
	if !IsMember(RoleClient, CustomerRoles) {
		t.Fatalf("client must be in the customer set")
	}
}

func TestNormalizeRole(t *testing.T) {
	if r := NormalizeRole(nil); r != RoleNone {
		t.Fatalf("nil should normalize to RoleNone, got %d", r)
	}
	if r := NormalizeRole(float64(5)); r != RoleClient {
		t.Fatalf("float64(5) should normalize to RoleClient, got %d", r)
	}
	if r := NormalizeRole(sql.NullInt64{Valid: true, Int64: 2}); r != RoleWaiter {
		t.Fatalf("NullInt64{2} should normalize to RoleWaiter, got %d", r)
	}
	if r := NormalizeRole(sql.NullInt64{}); r != RoleNone {
		t.Fatalf("invalid NullInt64 should normalize to RoleNone, got %d", r)
	}
	if r := NormalizeRole("bogus"); r != RoleNone {
		t.Fatalf("unsupported type should normalize to RoleNone, got %d", r)
	}
}
