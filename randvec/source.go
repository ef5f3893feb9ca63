package randvec

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Source resolves the random vector associated with a context id. The
// accumulation stage depends on this interface rather than on a concrete
// generator so vectors can be produced, memoized, or precomputed as the
// caller prefers.
type Source interface {
	Vector(contextID int64) (Vector, error)
}

// CachedSource memoizes an underlying Source behind an LRU cache. Vectors are
// immutable once generated, so the cache needs no invalidation; concurrent
// readers are safe and a duplicated generation on a racing miss is harmless
// because generation is deterministic.
type CachedSource struct {
	src   Source
	cache *lru.Cache[int64, Vector]
}

// NewCachedSource wraps src with an LRU cache of the given capacity.
func NewCachedSource(src Source, capacity int) (*CachedSource, error) {
	if src == nil {
		return nil, fmt.Errorf("randvec: source is nil")
	}
	cache, err := lru.New[int64, Vector](capacity)
	if err != nil {
		return nil, fmt.Errorf("randvec: cache capacity %d: %w", capacity, err)
	}
	return &CachedSource{src: src, cache: cache}, nil
}

// Vector returns the cached vector for the context id, generating and
// memoizing it on a miss.
func (c *CachedSource) Vector(contextID int64) (Vector, error) {
	if v, ok := c.cache.Get(contextID); ok {
		return v, nil
	}
	v, err := c.src.Vector(contextID)
	if err != nil {
		return Vector{}, err
	}
	c.cache.Add(contextID, v)
	return v, nil
}

// Len returns the number of memoized vectors.
func (c *CachedSource) Len() int { return c.cache.Len() }

var _ Source = (*CachedSource)(nil)
