// Package concurrency provides named locks for serializing work keyed by
// entity id, such as index syncs of a single inflatable.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Locks are never released from the
// map; the key space here is inflatable ids, which stays small.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
