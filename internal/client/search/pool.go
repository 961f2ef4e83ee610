package search

// Pool is an ordered set of API credentials for the recipe search API.
// It only ever shrinks: a key that fails with an authorization or quota
// error is removed for the remainder of the session. Removal of an absent
// key is a no-op, so interleaved callers observing the same failure are
// harmless.
//
// The client runtime is a single event loop of asynchronous continuations;
// there is no parallel mutation, so the pool carries no lock.
type Pool struct {
	keys []string
}

// NewPool copies keys into a fresh pool.
func NewPool(keys []string) *Pool {
	cp := make([]string, len(keys))
	copy(cp, keys)
	return &Pool{keys: cp}
}

// Keys returns the remaining credentials in order. The returned slice is a
// copy.
func (p *Pool) Keys() []string {
	cp := make([]string, len(p.keys))
	copy(cp, p.keys)
	return cp
}

// Len returns the number of remaining credentials.
func (p *Pool) Len() int { return len(p.keys) }

// Empty reports whether the pool has been exhausted.
func (p *Pool) Empty() bool { return len(p.keys) == 0 }

// Remove drops key from the pool. Removing a key that is already gone does
// nothing.
func (p *Pool) Remove(key string) {
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			return
		}
	}
}
