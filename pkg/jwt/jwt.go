package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what the token carries about its holder. TokenVersion lets a
// password change invalidate every earlier token for the same user.
type Identity struct {
	UserID       string
	Username     string
	Role         string // "admin" | "operator"
	PlantID      string // empty for admins
	TokenVersion int
}

// Claims standard JWT claims plus the application identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	PlantID      string `json:"plant_id,omitempty"`
	TokenVersion int    `json:"token_version"`
}

// Generate signs a token (HS256) carrying the identity.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:       id.UserID,
		Username:     id.Username,
		Role:         id.Role,
		PlantID:      id.PlantID,
		TokenVersion: id.TokenVersion,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates the token and returns the identity it carries. Fails on an
// invalid, expired or wrongly-signed token.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid claims")
	}
	return Identity{
		UserID:       claims.UserID,
		Username:     claims.Username,
		Role:         claims.Role,
		PlantID:      claims.PlantID,
		TokenVersion: claims.TokenVersion,
	}, nil
}
