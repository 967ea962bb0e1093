package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/auth"
	"github.com/iliyamo/restaurant-ops/internal/model"
	"github.com/iliyamo/restaurant-ops/internal/repository"
)

// stubUsers is an in-memory UserLoader.
type stubUsers struct {
	users map[uint64]model.User
}

func (s *stubUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return model.User{}, repository.ErrUserNotFound
}

func issueToken(t *testing.T, secret string, userID uint64, role auth.Role, ttlMin int) string {
	t.Helper()
	tok, err := auth.NewAccessToken(secret, auth.SigningMethod("HS256"), userID, role, ttlMin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok.Token
}

func newAuthContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestJWTAuth_ValidToken(t *testing.T) {
	users := &stubUsers{users: map[uint64]model.User{
		7: {ID: 7, DNI: "12345678", FullName: "Ana", Email: "ana@example.com", RoleID: auth.RoleWaiter},
	}}
	c, rec := newAuthContext(issueToken(t, "secret", 7, auth.RoleWaiter, 60))

	called := false
	handler := JWTAuth("secret", users)(func(c echo.Context) error {
		called = true
		u, ok := CurrentUser(c)
		if !ok || u.ID != 7 {
			t.Fatalf("user not injected into context")
		}
		if CurrentRole(c) != auth.RoleWaiter {
			t.Fatalf("role not injected into context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	c, rec := newAuthContext("")
	handler := JWTAuth("secret", &stubUsers{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	c, rec := newAuthContext("not-a-token")
	handler := JWTAuth("secret", &stubUsers{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	users := &stubUsers{users: map[uint64]model.User{7: {ID: 7}}}
	c, rec := newAuthContext(issueToken(t, "secret", 7, auth.RoleWaiter, -1))
	handler := JWTAuth("secret", users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuth_VanishedUser(t *testing.T) {
	// A token referencing a deleted user is treated exactly like a bad
	// token, not like a missing resource.
	c, rec := newAuthContext(issueToken(t, "secret", 99, auth.RoleWaiter, 60))
	handler := JWTAuth("secret", &stubUsers{users: map[uint64]model.User{}})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
