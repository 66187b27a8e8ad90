package batch

import (
	"atomictx/internal/services/transfer"

	"github.com/google/uuid"
)

// Result is the outcome of one transfer attempt.
type Result struct {
	ID     uuid.UUID `json:"id"`
	Amount uint64    `json:"amount"`
	Fee    uint64    `json:"fee"`
	Err    error     `json:"-"`
}

// Succeeded reports whether the attempt moved funds.
func (r Result) Succeeded() bool {
	return r.Err == nil
}

// Summary aggregates a batch of results.
type Summary struct {
	Attempts   int            `json:"attempts"`
	Succeeded  int            `json:"succeeded"`
	Failures   map[string]int `json:"failures"` // keyed by transfer result label
	FeesBurned uint64         `json:"fees_burned"`
	Moved      uint64         `json:"moved"`
}

// Summarize totals results. Attempts that never started (zero ID) are skipped.
func Summarize(results []Result) Summary {
	s := Summary{Failures: make(map[string]int)}
	for _, r := range results {
		if r.ID == uuid.Nil {
			continue
		}
		s.Attempts++
		if !r.Succeeded() {
			s.Failures[transfer.ResultLabel(r.Err)]++
			continue
		}
		s.Succeeded++
		s.FeesBurned += r.Fee
		s.Moved += r.Amount
	}
	return s
}
