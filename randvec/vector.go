package randvec

// Vector is a sparse ternary random vector. Only the nonzero entries are
// stored: Positions holds their zero-based coordinates in ascending order and
// Signs holds the parallel +1/-1 values. All positions are distinct and the
// counts of +1 and -1 entries differ by at most one.
type Vector struct {
	// Dim is the dense dimension of the vector.
	Dim int

	// Positions are the coordinates of the nonzero entries, sorted ascending.
	Positions []int32

	// Signs holds +1 or -1 for each entry in Positions.
	Signs []int8
}

// NonZero returns the number of nonzero entries.
func (v Vector) NonZero() int { return len(v.Positions) }

// AddTo scatter-adds weight*v into dst. len(dst) must equal v.Dim; the dense
// accumulator convention keeps this the only place sparse and dense
// representations meet.
func (v Vector) AddTo(dst []int64, weight int64) {
	for i, p := range v.Positions {
		dst[p] += weight * int64(v.Signs[i])
	}
}

// At returns the dense value at coordinate i (0, +1 or -1).
func (v Vector) At(i int) int64 {
	for j, p := range v.Positions {
		if int(p) == i {
			return int64(v.Signs[j])
		}
		if int(p) > i {
			break
		}
	}
	return 0
}

// Dense materializes the vector as a dense int64 slice. Intended for tests
// and small exports; the pipeline itself never densifies context vectors.
func (v Vector) Dense() []int64 {
	out := make([]int64, v.Dim)
	v.AddTo(out, 1)
	return out
}
