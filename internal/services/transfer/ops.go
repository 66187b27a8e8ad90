package transfer

import "math/bits"

// op is one balance mutation inside a transfer. revert undoes a successful
// apply exactly. Both run with the pair's lock held.
type op interface {
	apply(b *Balances) error
	revert(b *Balances)
}

type debitSender struct {
	amount uint64
	err    error // returned when the sender cannot cover amount
}

func (d debitSender) apply(b *Balances) error {
	if b.Sender < d.amount {
		return d.err
	}
	b.Sender -= d.amount
	return nil
}

func (d debitSender) revert(b *Balances) {
	b.Sender += d.amount
}

type creditReceiver struct {
	amount uint64
}

func (c creditReceiver) apply(b *Balances) error {
	sum, carry := bits.Add64(b.Receiver, c.amount, 0)
	if carry != 0 {
		return ErrOverflow
	}
	b.Receiver = sum
	return nil
}

func (c creditReceiver) revert(b *Balances) {
	b.Receiver -= c.amount
}

// applyAll applies ops in order. When one fails, the ops that already
// applied are reverted newest first and the failure is returned.
func applyAll(b *Balances, ops []op) error {
	for i, o := range ops {
		if err := o.apply(b); err != nil {
			for j := i - 1; j >= 0; j-- {
				ops[j].revert(b)
			}
			return err
		}
	}
	return nil
}
