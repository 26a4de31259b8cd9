// Package auth adapts the external identity provider: it validates signed
// tokens and hands the caller's identity to the service layer as explicit
// parameters. No registration, login, or password handling lives here.
package auth

import (
	"time"

	"circular-lab/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload carried by a session token.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the resolved identity of a request.
type Principal struct {
	UserID string
	Role   domain.Role
}

// GenerateToken creates a signed JWT for a user. Used by tooling and tests;
// in production the identity provider issues tokens with the same shape.
func GenerateToken(secret []byte, userID string, role domain.Role, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "circular-lab",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and validates the signature and expiration of a JWT
// string, then checks the embedded role against the closed role set.
func ValidateToken(secret []byte, tokenString string) (Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return Principal{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Principal{}, jwt.ErrSignatureInvalid
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}
	return Principal{UserID: claims.UserID, Role: role}, nil
}
