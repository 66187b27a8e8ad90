package batch

import "context"

// Transferer is the account pair operation used by the batch runner.
type Transferer interface {
	Transfer(amount uint64) error
}

// Service runs many transfer attempts against one account pair.
type Service interface {
	Run(ctx context.Context, amounts []uint64) ([]Result, error)
}
