package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the function
	// use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
// The matching engine's upsert + reciprocal-check + create sequence runs
// through this so the whole step commits or rolls back as a unit.
type RepositoryFactory interface {
	// NewSwipeRepository returns a SwipeRepository bound to the current transaction.
	NewSwipeRepository() SwipeRepository

	// NewMatchRepository returns a MatchRepository bound to the current transaction.
	NewMatchRepository() MatchRepository

	// NewMessageRepository returns a MessageRepository bound to the current transaction.
	NewMessageRepository() MessageRepository
}
