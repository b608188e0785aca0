package services

import (
	"errors"
	"testing"

	"chat-server/models"
)

// TestAccessTokenRoundTrip verifies that an issued access token parses back to
// the same identity.
func TestAccessTokenRoundTrip(t *testing.T) {
	user := models.User{ID: "u1", Email: "u1@example.com", FullName: "User One"}

	token, err := GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken failed: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "u1@example.com" || claims.FullName != "User One" {
		t.Errorf("claims = %+v, want u1 identity", claims)
	}
}

// TestRefreshTokenRoundTrip verifies the refresh token carries only the id.
func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims, err := ParseRefreshToken(token)
	if err != nil {
		t.Fatalf("ParseRefreshToken failed: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("claims.UserID = %q, want u1", claims.UserID)
	}
}

// TestParseGarbageToken verifies that malformed tokens report ErrInvalidToken.
func TestParseGarbageToken(t *testing.T) {
	if _, err := ParseAccessToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

// TestTokenSecretsNotInterchangeable verifies that a refresh token does not
// parse as an access token.
func TestTokenSecretsNotInterchangeable(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")

	refresh, err := GenerateRefreshToken(models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}
	if _, err := ParseAccessToken(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

// TestExpiredTokenRejected verifies TTL enforcement.
func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "-1m")

	token, err := GenerateAccessToken(models.User{ID: "u1"})
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if _, err := ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken for expired token", err)
	}
}
