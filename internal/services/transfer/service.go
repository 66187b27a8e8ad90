package transfer

import (
	"sync"

	"atomictx/internal/services/fee"
)

// AccountPair is a sender and a receiver balance guarded by one mutex.
// The zero value is a pair with both balances at zero.
type AccountPair struct {
	mu       sync.Mutex
	balances Balances // guarded by mu

	metrics MetricsCollector
}

// NewAccountPair creates a pair with the given opening balances. A nil
// metrics collector disables metrics.
func NewAccountPair(sender, receiver uint64, metrics MetricsCollector) *AccountPair {
	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &AccountPair{
		balances: Balances{Sender: sender, Receiver: receiver},
		metrics:  metrics,
	}
}

// Transfer debits the fee for amount and amount itself from the sender and
// credits amount to the receiver. On error neither balance changes.
func (p *AccountPair) Transfer(amount uint64) error {
	charge := fee.Calculate(amount)

	err := p.apply([]op{
		debitSender{amount: charge, err: ErrInsufficientFundsForFee},
		debitSender{amount: amount, err: ErrInsufficientFundsForAmount},
		creditReceiver{amount: amount},
	})

	m := p.collector()
	m.RecordOperationResult(OperationTransfer, ResultLabel(err))
	if err == nil {
		m.RecordFeeBurned(charge)
		m.RecordTransferVolume(amount)
	}
	return err
}

// Balances returns a snapshot of both balances.
func (p *AccountPair) Balances() Balances {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balances
}

func (p *AccountPair) apply(ops []op) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return applyAll(&p.balances, ops)
}

func (p *AccountPair) collector() MetricsCollector {
	if p.metrics == nil {
		return &NoopMetricsCollector{}
	}
	return p.metrics
}
