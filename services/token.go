package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"chat-server/config"
	"chat-server/models"
)

type AccessClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	jwt.StandardClaims
}

type RefreshClaims struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}

// GenerateAccessToken issues a short-lived token carrying the user's identity.
func GenerateAccessToken(user models.User) (string, error) {
	claims := AccessClaims{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(config.AccessTokenTTL()).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AccessTokenSecret()))
}

// GenerateRefreshToken issues a long-lived token carrying only the user id.
func GenerateRefreshToken(user models.User) (string, error) {
	claims := RefreshClaims{
		UserID: user.ID,
		StandardClaims: jwt.StandardClaims{
			// Unique jti so rotation always yields a distinct token.
			Id:        uuid.New().String(),
			ExpiresAt: time.Now().Add(config.RefreshTokenTTL()).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.RefreshTokenSecret()))
}

// ParseAccessToken verifies an access token and returns its claims.
func ParseAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	return claims, parseToken(tokenString, claims, config.AccessTokenSecret())
}

// ParseRefreshToken verifies a refresh token and returns its claims.
func ParseRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	return claims, parseToken(tokenString, claims, config.RefreshTokenSecret())
}

func parseToken(tokenString string, claims jwt.Claims, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
