package transfer

import (
	"sync"
	"testing"

	"atomictx/internal/services/fee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runConcurrently starts one goroutine per amount, releases them together
// and returns each call's result label in input order.
func runConcurrently(pair *AccountPair, amounts []uint64) []string {
	results := make([]string, len(amounts))
	start := make(chan struct{})
	var wg sync.WaitGroup

	for i, amount := range amounts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = ResultLabel(pair.Transfer(amount))
		}()
	}

	close(start)
	wg.Wait()
	return results
}

// sequential applies amounts one at a time in the given order using plain
// arithmetic, as a reference for the locked implementation.
func sequential(b Balances, amounts []uint64, order []int) (Balances, []string) {
	results := make([]string, len(amounts))
	for _, i := range order {
		amount := amounts[i]
		charge := fee.Calculate(amount)
		switch {
		case b.Sender < charge:
			results[i] = ResultInsufficientFee
		case b.Sender-charge < amount:
			results[i] = ResultInsufficientAmount
		default:
			b.Sender -= charge + amount
			b.Receiver += amount
			results[i] = ResultSuccess
		}
	}
	return b, results
}

func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, p := range permutations(n - 1) {
		for pos := 0; pos <= len(p); pos++ {
			next := make([]int, 0, n)
			next = append(next, p[:pos]...)
			next = append(next, n-1)
			next = append(next, p[pos:]...)
			out = append(out, next)
		}
	}
	return out
}

type outcome struct {
	end     Balances
	results [5]string
}

func TestAccountPair_Transfer_Serializable(t *testing.T) {
	start := Balances{Sender: 60, Receiver: 5}
	amounts := []uint64{8, 30, 15, 40, 3}
	require.Len(t, amounts, len(outcome{}.results))

	valid := make(map[outcome]bool)
	for _, order := range permutations(len(amounts)) {
		end, results := sequential(start, amounts, order)
		o := outcome{end: end}
		copy(o.results[:], results)
		valid[o] = true
	}

	for run := 0; run < 1000; run++ {
		pair := NewAccountPair(start.Sender, start.Receiver, nil)
		results := runConcurrently(pair, amounts)

		o := outcome{end: pair.Balances()}
		copy(o.results[:], results)
		if !assert.True(t, valid[o], "run %d: %v %v matches no sequential order", run, o.end, results) {
			return
		}
	}
}

func TestAccountPair_Transfer_ConservesFunds(t *testing.T) {
	const workers = 64
	start := Balances{Sender: 5000, Receiver: 100}

	amounts := make([]uint64, workers)
	for i := range amounts {
		amounts[i] = uint64(i*13 + 1)
	}

	pair := NewAccountPair(start.Sender, start.Receiver, nil)
	results := runConcurrently(pair, amounts)

	var burned, moved uint64
	for i, r := range results {
		if r == ResultSuccess {
			burned += fee.Calculate(amounts[i])
			moved += amounts[i]
		}
	}

	end := pair.Balances()
	assert.Equal(t, start.Total()-burned, end.Total())
	assert.Equal(t, start.Receiver+moved, end.Receiver)
	assert.Equal(t, start.Sender-burned-moved, end.Sender)
}
