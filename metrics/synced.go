package metrics

import (
	"sync"
)

/*Synced - a mutex-guarded value. Readers take a snapshot, writers replace
or update it in place; the lock itself is never exposed. */
type Synced[T any] struct {
	mu    sync.Mutex
	value T
}

//Get - a snapshot of the current value
func (s *Synced[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

//Set - replace the value
func (s *Synced[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
}

//Update - replace the value with a function of the current one
func (s *Synced[T]) Update(f func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = f(s.value)
}
