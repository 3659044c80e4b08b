package memory

import "sync"

// Pool is a typed wrapper over sync.Pool. The service puts extents
// back as soon as they leave the index, so a Get usually reuses a
// recent record instead of allocating.
type Pool[T any] struct {
	p *sync.Pool
}

// NewPool returns a pool backed by ctor for cold gets. The caller
// resets recycled values itself; the pool hands them back as they were
// put.
func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

// Get returns a pooled value, or a fresh one from the constructor.
func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

// Put recycles v. The caller must not keep references to it.
func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}
