package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/auth"
	"github.com/iliyamo/restaurant-ops/internal/config"
	"github.com/iliyamo/restaurant-ops/internal/middleware"
	"github.com/iliyamo/restaurant-ops/internal/model"
	"github.com/iliyamo/restaurant-ops/internal/repository"
)

// AuthHandler bundles dependencies for the credential endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type registerReq struct {
	DNI      string `json:"dni"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

type loginReq struct {
	DNI      string `json:"dni"`
	Password string `json:"password"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *AuthHandler) issue(userID uint64, role auth.Role) (auth.AccessToken, error) {
	return auth.NewAccessToken(h.Cfg.JWTSecret, auth.SigningMethod(h.Cfg.JWTAlgorithm),
		userID, role, h.Cfg.AccessTTLMin)
}

// Register creates a user and returns a bearer token immediately. The role
// must be one of the known roles; the password is optional so staff can
// pre-create guest accounts, but when present it is hashed with the
// 72-byte truncation rule.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.DNI = strings.TrimSpace(req.DNI)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.DNI == "" || req.FullName == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dni/full_name/email required"})
	}
	role := auth.NormalizeRole(req.RoleID)
	if !auth.KnownRole(role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := model.User{
		DNI:      req.DNI,
		FullName: req.FullName,
		Email:    req.Email,
		RoleID:   role,
	}
	if req.Phone != "" {
		u.Phone = &req.Phone
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password, h.Cfg.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
		}
		u.PasswordHash = &hash
	}

	if _, err := h.Users.Create(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email or dni already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	tok, err := h.issue(u.ID, u.RoleID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusCreated, tokenResp{AccessToken: tok.Token, TokenType: "bearer"})
}

// Login verifies DNI + password and returns a fresh token. Missing users,
// passwordless accounts and wrong passwords all produce the same 401.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.DNI) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "dni/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByDNI(ctx, req.DNI)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if u.PasswordHash == nil || !auth.VerifyPassword(*u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	tok, err := h.issue(u.ID, u.RoleID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: tok.Token, TokenType: "bearer"})
}

// Me returns the authenticated identity; a cheap way for clients to test a
// token.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, userOut(u))
}
