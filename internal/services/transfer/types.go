package transfer

import (
	"errors"
	"fmt"
)

// Balances is a point-in-time copy of an account pair.
type Balances struct {
	Sender   uint64 `json:"sender"`
	Receiver uint64 `json:"receiver"`
}

func (b Balances) String() string {
	return fmt.Sprintf("{sender: %d, receiver: %d}", b.Sender, b.Receiver)
}

// Total is the combined balance of both accounts.
func (b Balances) Total() uint64 {
	return b.Sender + b.Receiver
}

// Result labels passed to MetricsCollector.RecordOperationResult
const (
	ResultSuccess            = "success"
	ResultInsufficientFee    = "insufficient_fee"
	ResultInsufficientAmount = "insufficient_amount"
	ResultOverflow           = "overflow"
	ResultUnknown            = "unknown"
)

// OperationTransfer is the operation name reported to metrics.
const OperationTransfer = "transfer"

// MetricsCollector receives transfer outcomes.
type MetricsCollector interface {
	RecordOperationResult(operation, result string)
	RecordFeeBurned(fee uint64)
	RecordTransferVolume(amount uint64)
}

// ResultLabel maps a Transfer error to its metrics label.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, ErrInsufficientFundsForFee):
		return ResultInsufficientFee
	case errors.Is(err, ErrInsufficientFundsForAmount):
		return ResultInsufficientAmount
	case errors.Is(err, ErrOverflow):
		return ResultOverflow
	default:
		return ResultUnknown
	}
}
