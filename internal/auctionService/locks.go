package auction

import (
	"fmt"
	"sync"

	"car-auction/internal/auctionerrors"
)

// lotLockTable serializes all mutating work per lot. Each lot gets its own
// mutex so bidding on different lots never contends; a bounded waiter count
// provides backpressure instead of unbounded queueing.
type lotLockTable struct {
	mu         sync.Mutex
	entries    map[string]*lotLock
	maxWaiters int
}

type lotLock struct {
	mu      sync.Mutex
	waiters int
}

func newLotLockTable(maxWaiters int) *lotLockTable {
	return &lotLockTable{
		entries:    make(map[string]*lotLock),
		maxWaiters: maxWaiters,
	}
}

// acquire blocks until the lot's critical section is free, or rejects
// immediately when too many callers are already queued.
func (t *lotLockTable) acquire(lotID string) error {
	t.mu.Lock()
	e, ok := t.entries[lotID]
	if !ok {
		e = &lotLock{}
		t.entries[lotID] = e
	}
	if e.waiters >= t.maxWaiters {
		t.mu.Unlock()
		return fmt.Errorf("lot %s: %w", lotID, auctionerrors.ErrLotBusy)
	}
	e.waiters++
	t.mu.Unlock()

	e.mu.Lock()
	return nil
}

// release drops the entry once the last holder leaves, so closed lots do
// not pin their mutex for the life of the process. Anyone still queued has
// already bumped waiters under the table lock, so a zero count proves no
// outstanding references.
func (t *lotLockTable) release(lotID string) {
	t.mu.Lock()
	e := t.entries[lotID]
	e.waiters--
	if e.waiters == 0 {
		delete(t.entries, lotID)
	}
	t.mu.Unlock()
	e.mu.Unlock()
}
