package transfer

import "errors"

// Transfer errors
var (
	ErrInsufficientFundsForFee    = errors.New("insufficient funds for fee")
	ErrInsufficientFundsForAmount = errors.New("insufficient funds for amount")
	ErrOverflow                   = errors.New("receiver balance overflow")
)
