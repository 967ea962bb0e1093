package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/auth"
	"github.com/iliyamo/restaurant-ops/internal/model"
)

// newRoleContext builds a context as JWTAuth would have left it.
func newRoleContext(role auth.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ctxUser, model.User{ID: 1, RoleID: role})
	c.Set(ctxUserID, uint64(1))
	c.Set(ctxRole, role)
	return c, rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestRequireRoles_CustomerOnEmployeeEndpoint(t *testing.T) {
	c, rec := newRoleContext(auth.RoleClient)
	handler := RequireRoles(auth.EmployeeRoles...)(func(c echo.Context) error {
		t.Fatalf("customer must not reach an employee endpoint")
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoles_EmployeeAllowed(t *testing.T) {
	for _, role := range auth.EmployeeRoles {
		c, rec := newRoleContext(role)
		if err := RequireRoles(auth.EmployeeRoles...)(okHandler)(c); err != nil {
			t.Fatalf("handler error for role %d: %v", role, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("role %d expected 200, got %d", role, rec.Code)
		}
	}
}

func TestRequireRoles_NoneIsCustomer(t *testing.T) {
	// Accounts without a role pass customer checks but never employee ones.
	c, rec := newRoleContext(auth.RoleNone)
	if err := RequireRoles(auth.CustomerRoles...)(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for RoleNone on customer endpoint, got %d", rec.Code)
	}

	c, rec = newRoleContext(auth.RoleNone)
	if err := RequireRoles(auth.EmployeeRoles...)(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for RoleNone on employee endpoint, got %d", rec.Code)
	}
}

func TestRequirePermission(t *testing.T) {
	c, rec := newRoleContext(auth.RoleClient)
	if err := RequirePermission(auth.PermCRUD)(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("client with read-only role expected 403 on crud, got %d", rec.Code)
	}

	c, rec = newRoleContext(auth.RoleAdmin)
	if err := RequirePermission(auth.PermCRUD)(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("admin expected 200 on crud, got %d", rec.Code)
	}
}
