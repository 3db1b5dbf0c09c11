package service

import "github.com/google/uuid"

// TokenService defines the interface for verifying access tokens issued by
// the identity provider. Token issuance happens outside this system.
type TokenService interface {
	// ValidateAccessToken verifies the token signature and expiry and returns
	// the authenticated user's ID.
	ValidateAccessToken(token string) (uuid.UUID, error)
}
