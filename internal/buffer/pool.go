package buffer

import "sync"

// Pool provides sync.Pool-based Vector reuse.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Vector{}
			},
		},
	}
}

// Get returns a zeroed Vector of the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Vector {
	v := p.pool.Get().(*Vector)
	v.Resize(length)
	v.Zero()
	return v
}

// Put returns a Vector to the pool. The caller must not use it afterwards.
func (p *Pool) Put(v *Vector) {
	if v == nil {
		return
	}
	p.pool.Put(v)
}
