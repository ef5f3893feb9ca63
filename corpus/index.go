package corpus

import (
	"fmt"
	"sort"
)

// Posting records how many times a token occurred within one context.
type Posting struct {
	// Context is the id of the context the token occurred in.
	Context int64

	// Count is the number of occurrences within that context.
	Count int32
}

// Index is the sparse token-context incidence structure produced by an
// Indexer. Postings for each token are ordered by ascending context id; the
// dense token-context matrix is never materialized.
type Index struct {
	postings map[string][]Posting
	freqs    map[string]int64
	order    []string // tokens in first-seen order
	next     int64    // next context id to assign
}

func newIndex(base int64) *Index {
	return &Index{
		postings: make(map[string][]Posting),
		freqs:    make(map[string]int64),
		next:     base,
	}
}

// Contexts returns the next context id to be assigned, which equals the
// number of contexts consumed when indexing started at id 0.
func (x *Index) Contexts() int64 { return x.next }

// Postings returns the (context, count) postings for a token in ascending
// context order, or nil if the token was never observed. The returned slice
// is the index's own storage and must not be modified.
func (x *Index) Postings(token string) []Posting { return x.postings[token] }

// Frequency returns the token's total occurrence count across all contexts.
func (x *Index) Frequency(token string) int64 { return x.freqs[token] }

// Frequencies returns the live token frequency map. Callers must treat it as
// read-only.
func (x *Index) Frequencies() map[string]int64 { return x.freqs }

// Tokens returns every observed token in first-seen order. The slice is the
// index's own storage and must not be modified.
func (x *Index) Tokens() []string { return x.order }

// addTokens records one context's token multiset under the next context id
// and returns that id.
func (x *Index) addTokens(tokens []string) int64 {
	id := x.next
	x.next++
	if len(tokens) == 0 {
		return id
	}

	counts := make(map[string]int32, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			if _, seen := x.freqs[tok]; !seen {
				x.order = append(x.order, tok)
			}
		}
		counts[tok]++
	}
	for tok, c := range counts {
		x.postings[tok] = append(x.postings[tok], Posting{Context: id, Count: c})
		x.freqs[tok] += int64(c)
	}
	return id
}

// Merge folds another index into this one. Shard indexes must cover disjoint
// context id ranges (use NewIndexerAt to offset each shard); merging sums
// frequencies and interleaves postings by context id, so the result is
// identical to a single sequential pass over the combined corpus.
func (x *Index) Merge(other *Index) error {
	if other == nil {
		return fmt.Errorf("corpus: merge with nil index")
	}
	// Walk the shard's first-seen order so the merged token order stays
	// deterministic for a given shard sequence.
	for _, tok := range other.order {
		if _, seen := x.freqs[tok]; !seen {
			x.order = append(x.order, tok)
		}
		merged := append(x.postings[tok], other.postings[tok]...)
		sort.Slice(merged, func(a, b int) bool { return merged[a].Context < merged[b].Context })
		for i := 1; i < len(merged); i++ {
			if merged[i].Context == merged[i-1].Context {
				return fmt.Errorf("corpus: merge overlap at context %d for token %q", merged[i].Context, tok)
			}
		}
		x.postings[tok] = merged
		x.freqs[tok] += other.freqs[tok]
	}
	if other.next > x.next {
		x.next = other.next
	}
	return nil
}
