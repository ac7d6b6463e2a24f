package usecase

import "sync"

// lockTable serializes turns per thread. Entries are reference-counted and
// removed once the last holder releases, so the table stays bounded by the
// number of threads with an in-flight turn.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*threadLock
}

type threadLock struct {
	mu   sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*threadLock)}
}

// Lock blocks until the calling goroutine owns threadID and returns the
// matching release function.
func (t *lockTable) Lock(threadID string) (unlock func()) {
	t.mu.Lock()
	tl, ok := t.locks[threadID]
	if !ok {
		tl = &threadLock{}
		t.locks[threadID] = tl
	}
	tl.refs++
	t.mu.Unlock()

	tl.mu.Lock()
	return func() {
		tl.mu.Unlock()
		t.mu.Lock()
		tl.refs--
		if tl.refs == 0 {
			delete(t.locks, threadID)
		}
		t.mu.Unlock()
	}
}
