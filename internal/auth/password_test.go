package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("expected password to be hashed")
	}
	if !VerifyPassword(hash, "s3cret-pass") {
		t.Fatalf("correct password did not verify")
	}
	if VerifyPassword(hash, "wrong-pass") {
		t.Fatalf("wrong password verified")
	}
}

func TestHashPassword_TruncatesAt72Bytes(t *testing.T) {
	base := strings.Repeat("a", 72)
	hash, err := HashPassword(base, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	// Two passwords differing only beyond the 72-byte bound are
	// verification-equivalent.
	if !VerifyPassword(hash, base+"ignored-suffix") {
		t.Fatalf("suffix beyond 72 bytes should not affect verification")
	}
	// A difference inside the bound still matters.
	if VerifyPassword(hash, strings.Repeat("b", 72)) {
		t.Fatalf("different password within the bound verified")
	}
}

func TestHashPassword_LongInputDoesNotError(t *testing.T) {
	// bcrypt rejects inputs over 72 bytes; the truncation must prevent that.
	if _, err := HashPassword(strings.Repeat("x", 200), bcrypt.MinCost); err != nil {
		t.Fatalf("long password should hash without error, got: %v", err)
	}
}
