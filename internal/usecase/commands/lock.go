package commands

import "sync"

// WriteLock serialises read-check-write sequences against the store within
// this process. All command use cases share one instance.
type WriteLock struct {
	mu sync.Mutex
}

func NewWriteLock() *WriteLock {
	return &WriteLock{}
}

func (l *WriteLock) Lock()   { l.mu.Lock() }
func (l *WriteLock) Unlock() { l.mu.Unlock() }
