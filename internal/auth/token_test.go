package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	tok, err := NewAccessToken("secret", SigningMethod("HS256"), 42, RoleWaiter, 60)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}
	if !tok.Exp.After(time.Now()) {
		t.Fatalf("expected a future expiry, got %v", tok.Exp)
	}
	claims, err := ParseAccessToken("secret", tok.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Role != RoleWaiter {
		t.Fatalf("expected role %d, got %d", RoleWaiter, claims.Role)
	}
}

func TestAccessToken_NullRole(t *testing.T) {
	tok, err := NewAccessToken("secret", SigningMethod("HS256"), 7, RoleNone, 60)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}
	claims, err := ParseAccessToken("secret", tok.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken returned error: %v", err)
	}
	if claims.Role != RoleNone {
		t.Fatalf("expected RoleNone, got %d", claims.Role)
	}
}

func TestAccessToken_Expired(t *testing.T) {
	tok, err := NewAccessToken("secret", SigningMethod("HS256"), 42, RoleClient, -1)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}
	if _, err := ParseAccessToken("secret", tok.Token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAccessToken_WrongSecret(t *testing.T) {
	tok, err := NewAccessToken("secret-a", SigningMethod("HS256"), 42, RoleClient, 60)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}
	if _, err := ParseAccessToken("secret-b", tok.Token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestAccessToken_Malformed(t *testing.T) {
	if _, err := ParseAccessToken("secret", "not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage input, got %v", err)
	}
}

func TestAccessToken_MissingUserID(t *testing.T) {
	// A token signed with the right secret but without a user_id claim must
	// still be rejected.
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": 1,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := ParseAccessToken("secret", raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken without user_id, got %v", err)
	}
}

func TestAccessToken_RejectsNonHMAC(t *testing.T) {
	// alg=none style tokens must never pass.
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := ParseAccessToken("secret", raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}
