package quotes

import "sync/atomic"

// Budget caps the total number of page fetches across one run. It is
// shared by reference across all concurrently running category walkers.
//
// The counter only increases (except for Release, which undoes a failed
// reservation) and never exceeds the configured limit: TryAcquire is an
// atomic compare-and-increment, so the cap is exact even under contention.
type Budget struct {
	limit int64
	used  atomic.Int64
}

// NewBudget creates a Budget allowing up to limit fetches.
func NewBudget(limit int64) *Budget {
	return &Budget{limit: limit}
}

// TryAcquire reserves one fetch against the budget. Returns false once
// the limit has been reached; no fetch may be issued after that.
func (b *Budget) TryAcquire() bool {
	for {
		used := b.used.Load()
		if used >= b.limit {
			return false
		}
		if b.used.CompareAndSwap(used, used+1) {
			return true
		}
	}
}

// Release returns one previously acquired reservation. Called when a
// reserved fetch fails, so Used counts completed requests only.
func (b *Budget) Release() {
	b.used.Add(-1)
}

// Used returns the number of fetches consumed so far.
func (b *Budget) Used() int64 {
	return b.used.Load()
}

// Limit returns the configured cap.
func (b *Budget) Limit() int64 {
	return b.limit
}

// Remaining returns the number of fetches still available.
func (b *Budget) Remaining() int64 {
	if r := b.limit - b.used.Load(); r > 0 {
		return r
	}
	return 0
}
