package embedding

import (
	"fmt"

	"github.com/viant/randix/corpus"
	"github.com/viant/randix/randvec"
)

// Accumulate computes one token's dense embedding by scatter-adding the
// sparse random vector of every context the token occurs in, scaled by the
// incidence count. Cost is O(len(postings) * m); the dense accumulator is the
// only allocation.
func Accumulate(postings []corpus.Posting, src randvec.Source, dim int) ([]int64, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("embedding: dimension must be positive, got %d", dim)
	}
	if src == nil {
		return nil, fmt.Errorf("embedding: vector source is nil")
	}
	sum := make([]int64, dim)
	for _, p := range postings {
		v, err := src.Vector(p.Context)
		if err != nil {
			return nil, fmt.Errorf("embedding: context %d: %w", p.Context, err)
		}
		if v.Dim != dim {
			return nil, fmt.Errorf("embedding: context %d vector dimension %d, want %d", p.Context, v.Dim, dim)
		}
		v.AddTo(sum, int64(p.Count))
	}
	return sum, nil
}
