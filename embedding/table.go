package embedding

import (
	"fmt"
	"sync"

	"github.com/viant/randix/randvec"
	"github.com/viant/randix/vocab"
)

// Table owns the token → embedding mapping. Partial sums are kept for every
// observed token, including those below the frequency threshold, so raising
// frequencies through Update or lowering the threshold through SetMinCount
// never requires recomputation; only retained tokens are visible through Get
// and Tokens.
//
// Safe for concurrent readers; Update and SetMinCount take the write lock.
type Table struct {
	mu       sync.RWMutex
	dim      int
	minCount int
	seed     uint64
	src      randvec.Source
	next     int64 // id assigned to the next appended context
	sums     map[string]*tokenSum
	order    []string // observed tokens in first-seen order
}

type tokenSum struct {
	freq int64
	vec  []int64
}

// Dimension returns the embedding dimension n.
func (t *Table) Dimension() int { return t.dim }

// Seed returns the seed keying the table's random vector generator. A
// persisted snapshot carries it so later builds can be validated against
// the generator that produced the stored sums.
func (t *Table) Seed() uint64 { return t.seed }

// MinCount returns the current vocabulary frequency threshold.
func (t *Table) MinCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.minCount
}

// Contexts returns the id the next appended context will receive, which is
// the number of contexts accumulated so far.
func (t *Table) Contexts() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.next
}

// Get returns a copy of the token's embedding. The second result is false for
// tokens never observed or observed below the threshold; a retained token
// whose entries all cancelled to zero still reports true.
func (t *Table) Get(token string) ([]int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.sums[token]
	if !ok || !vocab.Retained(s.freq, t.minCount) {
		return nil, false
	}
	out := make([]int64, len(s.vec))
	copy(out, s.vec)
	return out, true
}

// Frequency returns the token's global occurrence count and whether the token
// has been observed at all, regardless of retention.
func (t *Table) Frequency(token string) (int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.sums[token]
	if !ok {
		return 0, false
	}
	return s.freq, true
}

// Tokens returns the retained tokens in first-seen order. The order is stable
// across calls for a fixed table state, making exports reproducible.
func (t *Table) Tokens() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.order))
	for _, tok := range t.order {
		if vocab.Retained(t.sums[tok].freq, t.minCount) {
			out = append(out, tok)
		}
	}
	return out
}

// Len returns the number of retained tokens.
func (t *Table) Len() int { return len(t.Tokens()) }

// Update appends one newly observed, already tokenized context and returns
// its assigned id. Only the sums of tokens present in the context are
// touched: the context's random vector is generated once and scatter-added
// to each, so the cost is O(tokens in the context × m) independent of corpus
// size. Retention is re-evaluated implicitly since Get and Tokens read the
// live frequencies.
func (t *Table) Update(tokens []string) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.next
	if len(tokens) == 0 {
		t.next++
		return id, nil
	}

	// The id is consumed only once the context's vector is in hand, so a
	// failed update leaves the table exactly as it was.
	v, err := t.src.Vector(id)
	if err != nil {
		return 0, fmt.Errorf("embedding: context %d: %w", id, err)
	}
	if v.Dim != t.dim {
		return 0, fmt.Errorf("embedding: context %d vector dimension %d, want %d", id, v.Dim, t.dim)
	}
	t.next++

	counts := make(map[string]int32, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	// Walk the token slice, not the count map, so newly observed tokens join
	// the order deterministically.
	applied := make(map[string]bool, len(counts))
	for _, tok := range tokens {
		if applied[tok] {
			continue
		}
		applied[tok] = true
		s, ok := t.sums[tok]
		if !ok {
			s = &tokenSum{vec: make([]int64, t.dim)}
			t.sums[tok] = s
			t.order = append(t.order, tok)
		}
		c := counts[tok]
		s.freq += int64(c)
		v.AddTo(s.vec, int64(c))
	}
	return id, nil
}

// SetMinCount changes the vocabulary threshold in place. Because partial sums
// are retained for every observed token, no recomputation happens; the
// retained set visible through Get and Tokens simply changes.
func (t *Table) SetMinCount(minCount int) error {
	if minCount < 0 {
		return fmt.Errorf("embedding: minCount must be non-negative, got %d", minCount)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.minCount = minCount
	return nil
}
