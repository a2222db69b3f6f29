package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestParser_RoundTrip(t *testing.T) {
	parser := NewParser("test-secret")
	profileID := uuid.New()

	token, err := parser.Issue(profileID, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	got, err := parser.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got != profileID {
		t.Errorf("parsed profile id = %v, want %v", got, profileID)
	}
}

func TestParser_WrongSecret(t *testing.T) {
	token, err := NewParser("secret-a").Issue(uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewParser("secret-b").Parse(token); err != ErrInvalidToken {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestParser_ExpiredToken(t *testing.T) {
	parser := NewParser("test-secret")
	token, err := parser.Issue(uuid.New(), -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := parser.Parse(token); err != ErrInvalidToken {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestParser_RejectsOtherAlgorithms(t *testing.T) {
	secret := "test-secret"
	claims := Claims{
		ProfileID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := NewParser(secret).Parse(token); err != ErrInvalidToken {
		t.Fatalf("HS384 token must be rejected, got %v", err)
	}
}

func TestParser_GarbageToken(t *testing.T) {
	if _, err := NewParser("test-secret").Parse("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}
