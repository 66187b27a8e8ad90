// Package fee holds the fixed fee schedule charged on every transfer.
package fee

// Tier is one bracket of the fee schedule. Amounts up to and including
// UpTo pay Fee. The last tier has no upper bound and charges a share of
// the amount instead.
type Tier struct {
	UpTo uint64
	Fee  uint64
}

// Amounts above the last bounded tier pay amount/ProportionalDivisor.
const ProportionalDivisor = 50

var tiers = []Tier{
	{UpTo: 10, Fee: 2},
	{UpTo: 100, Fee: 5},
	{UpTo: 500, Fee: 10},
}

// Calculate returns the fee for a transfer of amount.
func Calculate(amount uint64) uint64 {
	for _, t := range tiers {
		if amount <= t.UpTo {
			return t.Fee
		}
	}
	return amount / ProportionalDivisor
}

// Tiers returns a copy of the bounded tiers, in evaluation order.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}
