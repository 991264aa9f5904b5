package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the bearer tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
type TokenService interface {
	// IssueToken signs an access token for the given user.
	IssueToken(userID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
