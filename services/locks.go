package services

import "sync"

// keyedMutex serializes work per key. The ledger keys it by order id, the
// table coordinator by table id; operations on different keys never contend.
// Mutexes are created lazily and kept for the life of the process, which is
// fine at restaurant scale.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock blocks until the key's mutex is held and returns the unlock func.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
