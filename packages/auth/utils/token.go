package utils

import (
	"errors"
	"time"

	"auth/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims portées par l'access token. Le sujet est toujours l'email admin.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signe un access token HS256 de courte durée.
func GenerateAccessToken(cfg models.Config) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: cfg.AdminEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cfg.AdminEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cfg.JWTSecret)
}

// ValidateAccessToken vérifie la signature et l'expiration du token et
// retourne ses claims.
func ValidateAccessToken(cfg models.Config, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return cfg.JWTSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
