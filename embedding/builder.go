package embedding

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/viant/randix/corpus"
	"github.com/viant/randix/randvec"
)

// Builder configures a one-pass embedding build over a corpus index.
type Builder struct {
	// Dim is the embedding dimension n.
	Dim int

	// NonZero is the number m of nonzero entries per context vector.
	NonZero int

	// MinCount is the vocabulary frequency threshold: tokens occurring
	// strictly more often are retained.
	MinCount int

	// Seed keys the random vector generator.
	Seed uint64

	// Workers bounds the accumulation fan-out; 0 means GOMAXPROCS.
	Workers int

	// CacheSize bounds the memoized context-vector cache; 0 sizes it to the
	// corpus so every context vector is generated exactly once.
	CacheSize int
}

// Build accumulates an embedding for every observed token and returns the
// resulting Table. Tokens are partitioned across workers; each token's sum
// only reads its own posting list and the shared immutable vector source, so
// no locking is needed. Cancellation is honored between tokens, leaving no
// partially accumulated state behind.
//
// An empty index yields an empty table, not an error.
func (b Builder) Build(ctx context.Context, idx *corpus.Index) (*Table, error) {
	if idx == nil {
		return nil, fmt.Errorf("embedding: index is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if b.MinCount < 0 {
		return nil, fmt.Errorf("embedding: minCount must be non-negative, got %d", b.MinCount)
	}

	gen, err := randvec.NewGenerator(b.Seed, randvec.Params{Dim: b.Dim, NonZero: b.NonZero})
	if err != nil {
		return nil, err
	}
	var src randvec.Source = gen
	capacity := b.CacheSize
	if capacity <= 0 {
		capacity = int(idx.Contexts())
	}
	if capacity > 0 {
		if src, err = randvec.NewCachedSource(gen, capacity); err != nil {
			return nil, err
		}
	}

	tokens := idx.Tokens()
	order := make([]string, len(tokens))
	copy(order, tokens)
	sums := make(map[string]*tokenSum, len(tokens))
	for _, tok := range tokens {
		sums[tok] = &tokenSum{freq: idx.Frequency(tok)}
	}

	workers := b.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(tokens) {
		workers = len(tokens)
	}

	if workers > 0 {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (len(tokens) + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > len(tokens) {
				hi = len(tokens)
			}
			if lo >= hi {
				break
			}
			part := tokens[lo:hi]
			g.Go(func() error {
				for _, tok := range part {
					if err := gctx.Err(); err != nil {
						return err
					}
					vec, err := Accumulate(idx.Postings(tok), src, b.Dim)
					if err != nil {
						return fmt.Errorf("embedding: token %q: %w", tok, err)
					}
					sums[tok].vec = vec
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return &Table{
		dim:      b.Dim,
		minCount: b.MinCount,
		seed:     b.Seed,
		src:      src,
		next:     idx.Contexts(),
		sums:     sums,
		order:    order,
	}, nil
}
