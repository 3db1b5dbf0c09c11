package service

import (
	"context"

	"github.com/google/uuid"
)

// BlockChecker defines the interface for block lookups. Blocks are managed by
// the account system; this engine only reads them to filter discovery results
// and refuse interaction between blocked pairs.
type BlockChecker interface {
	// IsBlocked reports whether either user has blocked the other.
	IsBlocked(ctx context.Context, userA, userB uuid.UUID) (bool, error)

	// BlockedUserIDs returns every user blocked by or blocking userID.
	BlockedUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
