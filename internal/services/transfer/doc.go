/*
Package transfer moves funds between a sender and a receiver that share a
single lock.

A transfer charges a fee from the fixed schedule in package fee and then
moves the principal. Either both happen or neither does:

	pair := transfer.NewAccountPair(10, 20, nil)

	err := pair.Transfer(8)
	// err == nil, pair.Balances() == {sender: 0, receiver: 28}

	err = pair.Transfer(8)
	// errors.Is(err, transfer.ErrInsufficientFundsForFee), balances unchanged

Error Handling:

  - ErrInsufficientFundsForFee: the sender cannot pay the fee
  - ErrInsufficientFundsForAmount: the sender can pay the fee but not fee plus amount
  - ErrOverflow: crediting the receiver would overflow its balance

Every failure leaves both balances exactly as they were before the call.

Concurrency:

Transfer may be called from any number of goroutines. Calls on one pair are
serialized by its mutex, so the outcome of concurrent calls equals applying
them one at a time in some order. There is no timeout on lock acquisition.

Metrics:

An optional MetricsCollector receives one result per attempt, recorded after
the lock is released. Implementations must be safe for concurrent use.
*/
package transfer
