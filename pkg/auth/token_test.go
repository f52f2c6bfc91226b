package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func TestIssueAndVerifyToken(t *testing.T) {
	token, err := IssueToken("user-1", secret)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := VerifyToken(token, secret)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("expected subject user-1, got %q", userID)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, _ := IssueToken("user-1", secret)

	if _, err := VerifyToken(token, []byte("another-secret-another-secret!!!")); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_Tampered(t *testing.T) {
	token, _ := IssueToken("user-1", secret)

	// Flip a character in the signature segment.
	i := strings.LastIndex(token, ".")
	sig := []byte(token[i+1:])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := token[:i+1] + string(sig)

	if _, err := VerifyToken(tampered, secret); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	// Hand-craft an already-expired token with valid signature.
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	// Expiry must surface as the same uniform error as tampering.
	if _, err := VerifyToken(expired, secret); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := VerifyToken(token, secret); err != ErrInvalidToken {
			t.Errorf("VerifyToken(%q): expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestVerifyToken_MissingSubject(t *testing.T) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyToken(token, secret); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}
