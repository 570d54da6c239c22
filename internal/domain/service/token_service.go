package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating the JWTs that
// scope a terminal to its organization. Authentication itself is an external
// collaborator; this service only consumes the claims.
type TokenService interface {
	// GenerateToken creates an access token for an operator terminal of the given organization.
	GenerateToken(orgID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
