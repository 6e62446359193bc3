package jwt

import (
	"SkinSense-Backend/domain"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	want := domain.AuthClaims{
		UserID:   uuid.New().String(),
		Email:    "jamie@example.com",
		FullName: "Jamie Doe",
		Name:     "jd",
	}

	token, err := service.GenerateToken(want, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	got, err := service.GetClaimsByToken(token)
	if err != nil {
		t.Fatalf("GetClaimsByToken returned error: %v", err)
	}
	if got != want {
		t.Fatalf("claims changed across the round trip: got %+v, want %+v", got, want)
	}
}

func TestExpiredToken(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateToken(domain.AuthClaims{
		UserID: uuid.New().String(),
		Email:  "jamie@example.com",
	}, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	_, err = service.GetClaimsByToken(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestGarbageToken(t *testing.T) {
	service := NewJWTService()

	_, err := service.GetClaimsByToken("definitely.not.a-token")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
