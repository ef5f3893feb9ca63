package randvec

import (
	"fmt"
	"math/rand"
	"sort"
)

// Params holds the shape of generated vectors.
type Params struct {
	// Dim is the dense dimension n of every context vector.
	Dim int

	// NonZero is the number m of nonzero entries per vector.
	NonZero int
}

// Validate reports whether the parameters describe a generatable vector
// shape. It fails fast so no corpus work starts on a bad configuration.
func (p Params) Validate() error {
	if p.Dim <= 0 {
		return fmt.Errorf("randvec: dimension must be positive, got %d", p.Dim)
	}
	if p.NonZero <= 0 {
		return fmt.Errorf("randvec: nonzero count must be positive, got %d", p.NonZero)
	}
	if p.NonZero > p.Dim {
		return fmt.Errorf("randvec: nonzero count %d exceeds dimension %d", p.NonZero, p.Dim)
	}
	return nil
}

// Generate returns the sparse ternary vector for the given context id. It is
// a pure function of (contextID, seed, p): the same inputs always produce the
// same vector, so vectors can be generated lazily, in any order, or from
// multiple goroutines without shared state.
//
// The nonzero positions are a uniform without-replacement sample of
// {0..p.Dim-1}; ceil(m/2) of them carry +1 and the remainder -1.
func Generate(contextID int64, seed uint64, p Params) (Vector, error) {
	if err := p.Validate(); err != nil {
		return Vector{}, err
	}

	r := rand.New(rand.NewSource(mix(seed, contextID))) //nolint:gosec

	// Partial Fisher-Yates shuffle: the first m slots end up holding a
	// uniform sample of distinct positions.
	idx := make([]int32, p.Dim)
	for i := range idx {
		idx[i] = int32(i)
	}
	for i := 0; i < p.NonZero; i++ {
		j := i + r.Intn(p.Dim-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	plus := (p.NonZero + 1) / 2
	entries := make([]entry, p.NonZero)
	for i := 0; i < p.NonZero; i++ {
		sign := int8(1)
		if i >= plus {
			sign = -1
		}
		entries[i] = entry{pos: idx[i], sign: sign}
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].pos < entries[b].pos })

	v := Vector{
		Dim:       p.Dim,
		Positions: make([]int32, p.NonZero),
		Signs:     make([]int8, p.NonZero),
	}
	for i, e := range entries {
		v.Positions[i] = e.pos
		v.Signs[i] = e.sign
	}
	return v, nil
}

type entry struct {
	pos  int32
	sign int8
}

// mix folds the global seed and the context id into a single stream seed
// using the splitmix64 finalizer, so per-context streams are independent.
func mix(seed uint64, contextID int64) int64 {
	z := seed ^ (uint64(contextID)+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// Generator is a Source producing vectors for a fixed seed and shape.
type Generator struct {
	seed   uint64
	params Params
}

// NewGenerator validates the parameters and returns a pure vector Source.
func NewGenerator(seed uint64, p Params) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{seed: seed, params: p}, nil
}

// Params returns the generator's vector shape.
func (g *Generator) Params() Params { return g.params }

// Vector generates the vector for the given context id.
func (g *Generator) Vector(contextID int64) (Vector, error) {
	return Generate(contextID, g.seed, g.params)
}

// Ensure Generator satisfies the Source interface.
var _ Source = (*Generator)(nil)
