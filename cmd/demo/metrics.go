package main

import (
	"sync"
	"sync/atomic"

	"atomictx/internal/services/transfer"

	"go.uber.org/zap"
)

// counters is a transfer.MetricsCollector that keeps process-local totals.
type counters struct {
	mu      sync.Mutex
	results map[string]int

	feesBurned atomic.Uint64
	volume     atomic.Uint64
}

var _ transfer.MetricsCollector = (*counters)(nil)

func newCounters() *counters {
	return &counters{results: make(map[string]int)}
}

func (c *counters) RecordOperationResult(operation, result string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[operation+"."+result]++
}

func (c *counters) RecordFeeBurned(fee uint64) {
	c.feesBurned.Add(fee)
}

func (c *counters) RecordTransferVolume(amount uint64) {
	c.volume.Add(amount)
}

func (c *counters) log(logger *zap.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	logger.Debug("transfer metrics",
		zap.Any("results", c.results),
		zap.Uint64("fees_burned", c.feesBurned.Load()),
		zap.Uint64("volume", c.volume.Load()),
	)
}
