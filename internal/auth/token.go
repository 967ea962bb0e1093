package auth // package auth provides password hashing, access tokens and role resolution

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is returned for every way a token can fail verification:
// malformed encoding, signature mismatch, unexpected algorithm, expiry in
// the past, or a missing user_id claim. Callers are deliberately not told
// which one it was.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed JWT along with its expiry. The Token field
// contains the serialized JWT string sent to clients in the Authorization
// header. Access tokens are stateless: there is no server-side revocation,
// only expiry or a secret rotation invalidates them.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Claims is the verified payload of an access token.
type Claims struct {
	UserID uint64
	Role   Role
}

// SigningMethod maps a JWT_ALGORITHM value onto its HMAC signing method.
// Only the HS256 family is supported; anything else falls back to HS256.
func SigningMethod(name string) *jwt.SigningMethodHMAC {
	switch name {
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}

// NewAccessToken builds and signs a JWT for a user. The claims carry the
// user id under "user_id" and the role under "role"; a RoleNone role is
// encoded as an explicit null so passwordless/guest identities round-trip.
// The expiry is now + ttlMin minutes.
func NewAccessToken(secret string, method *jwt.SigningMethodHMAC, userID uint64, role Role, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     exp.Unix(),
		"iat":     now.Unix(),
	}
	if role == RoleNone {
		claims["role"] = nil
	} else {
		claims["role"] = int(role)
	}
	t := jwt.NewWithClaims(method, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of a raw token string
// and extracts its claims. All failures collapse into ErrInvalidToken.
func ParseAccessToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but an HMAC method; an
		// attacker must not be able to pick the algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	uid, ok := mc["user_id"].(float64)
	if !ok || uid <= 0 {
		return Claims{}, ErrInvalidToken
	}
	return Claims{
		UserID: uint64(uid),
		Role:   NormalizeRole(mc["role"]),
	}, nil
}
