package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/troski/troski/internal/pkg/models"
)

// Claims represents standard JWT claims plus custom fields
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for the given user details
func GenerateToken(userID, email, role string, cfg models.JWTConfig) (string, int64, error) {
	return GenerateTokenWithExpiry(userID, email, role, cfg, time.Now().Add(time.Duration(cfg.Expiration)*time.Minute))
}

// GenerateTokenWithExpiry signs a token that expires at the given instant
func GenerateTokenWithExpiry(userID, email, role string, cfg models.JWTConfig, expiresAt time.Time) (string, int64, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ParseUnverified reads the claims of a token issued by the upstream API.
// The signature is not checked: the upstream owns the key and re-validates every call.
func ParseUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

// IsExpired reports whether the token carries an exp claim at or before now.
// Opaque tokens, such as the mock bearer token, never expire.
func IsExpired(tokenString string, now time.Time) bool {
	claims, err := ParseUnverified(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.Time.After(now)
}
