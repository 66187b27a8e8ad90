package batch

import (
	"context"

	"atomictx/internal/services/fee"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type service struct {
	pair        Transferer
	concurrency int
}

// NewService creates a batch runner. concurrency bounds the number of
// attempts in flight; zero or less runs every attempt at once.
func NewService(pair Transferer, concurrency int) Service {
	if pair == nil {
		panic("pair is required")
	}

	return &service{
		pair:        pair,
		concurrency: concurrency,
	}
}

// Run issues one transfer per amount and returns results in input order.
// Failed transfers are reported in the results, not as an error. The
// returned error is non-nil only if ctx ended before every attempt started;
// attempts already running are not interrupted.
func (s *service) Run(ctx context.Context, amounts []uint64) ([]Result, error) {
	results := make([]Result, len(amounts))
	if len(amounts) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}

	for i, amount := range amounts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Result{
				ID:     uuid.New(),
				Amount: amount,
				Fee:    fee.Calculate(amount),
				Err:    s.pair.Transfer(amount),
			}
			return nil
		})
	}

	return results, g.Wait()
}
