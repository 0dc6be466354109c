package repository

import "sync"

// addressLocks serializes read-modify-write cycles per address.
type addressLocks struct {
	m sync.Map
}

func (l *addressLocks) lock(address string) func() {
	v, _ := l.m.LoadOrStore(address, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
