// Package pool provides typed wrappers around sync.Pool for reusable
// codec workspaces and scratch slices.
package pool

import "sync"

// Pool is a typed sync.Pool.
//
// An optional discard predicate drops values instead of pooling them, so a
// value that grew unusually large during one call does not stay resident.
type Pool[T any] struct {
	pool    sync.Pool
	discard func(T) bool
}

// New creates a Pool that allocates values with newFn. discard may be nil.
func New[T any](newFn func() T, discard func(T) bool) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return newFn() },
		},
		discard: discard,
	}
}

// Get retrieves a value from the pool, allocating one if the pool is empty.
func (p *Pool[T]) Get() T {
	v, _ := p.pool.Get().(T)
	return v
}

// Put returns v to the pool unless the discard predicate rejects it.
func (p *Pool[T]) Put(v T) {
	if p.discard != nil && p.discard(v) {
		return
	}
	p.pool.Put(v)
}
