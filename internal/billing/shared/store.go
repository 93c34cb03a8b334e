package shared

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by MemoryStore when an identifier does not resolve.
var ErrNotFound = errors.New("record not found")

// MemoryStore is a mutex guarded collection keyed by a sequential int64
// identifier. Records are returned in insertion order. Identifiers are never
// reused, even after deletion.
type MemoryStore[T any] struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	items  map[int64]T
}

// NewMemoryStore creates an empty store whose first identifier is 1.
func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{
		nextID: 1,
		items:  make(map[int64]T),
	}
}

// Insert assigns the next identifier, lets build produce the record for it and
// stores the result. Assignment and insertion happen under one lock so
// concurrent inserts never share an identifier. When build fails nothing is
// stored and the identifier is not consumed.
func (s *MemoryStore[T]) Insert(build func(id int64) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	record, err := build(id)
	if err != nil {
		var zero T
		return zero, err
	}
	s.nextID++
	s.items[id] = record
	s.order = append(s.order, id)
	return record, nil
}

// Get returns the record for id.
func (s *MemoryStore[T]) Get(id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return record, nil
}

// List returns every record accepted by match in insertion order. A nil match
// accepts everything. The result is never nil.
func (s *MemoryStore[T]) List(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		record := s.items[id]
		if match == nil || match(record) {
			out = append(out, record)
		}
	}
	return out
}

// Update applies mutate to the stored record under the write lock. If mutate
// returns an error the stored record is left unchanged.
func (s *MemoryStore[T]) Update(id int64, mutate func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	next, err := mutate(current)
	if err != nil {
		var zero T
		return zero, err
	}
	s.items[id] = next
	return next, nil
}

// Delete removes the record for id.
func (s *MemoryStore[T]) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of stored records.
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
