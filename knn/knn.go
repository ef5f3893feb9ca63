package knn

import (
	"fmt"
	"sort"

	"github.com/viant/vec/search"

	"github.com/viant/randix/embedding"
)

// Index is a brute-force cosine kNN index over token embeddings. Vectors and
// magnitudes are fixed at build time; rebuild after extending the table.
type Index struct {
	tokens []string
	byTok  map[string]int
	vecs   [][]float32
	mags   []float32
	dim    int
}

// Match is a single similarity hit.
type Match struct {
	Token string
	Score float64
}

// Build snapshots the retained tokens of the given table into an index,
// converting the integer embeddings to float32 and precomputing magnitudes.
func Build(table *embedding.Table) (*Index, error) {
	if table == nil {
		return nil, fmt.Errorf("knn: table is nil")
	}
	tokens := table.Tokens()
	ix := &Index{
		tokens: tokens,
		byTok:  make(map[string]int, len(tokens)),
		vecs:   make([][]float32, len(tokens)),
		mags:   make([]float32, len(tokens)),
		dim:    table.Dimension(),
	}
	for i, tok := range tokens {
		emb, ok := table.Get(tok)
		if !ok {
			return nil, fmt.Errorf("knn: token %q disappeared during build", tok)
		}
		vec := make([]float32, len(emb))
		for j, v := range emb {
			vec[j] = float32(v)
		}
		ix.vecs[i] = vec
		ix.byTok[tok] = i
		ix.mags[i] = search.Float32s(vec).Magnitude()
	}
	return ix, nil
}

// Len returns the number of indexed tokens.
func (ix *Index) Len() int { return len(ix.tokens) }

// Query returns up to k matches ordered by decreasing cosine similarity.
// Zero-magnitude vectors (queries or entries) never match. When k <= 0 all
// matches are returned.
func (ix *Index) Query(query []float32, k int) ([]Match, error) {
	if len(ix.vecs) == 0 {
		return nil, nil
	}
	if len(query) != ix.dim {
		return nil, fmt.Errorf("knn: query dimension %d, want %d", len(query), ix.dim)
	}
	qm := search.Float32s(query).Magnitude()
	if qm == 0 {
		return nil, nil
	}

	matches := make([]Match, 0, len(ix.vecs))
	q := search.Float32s(query)
	for i := range ix.vecs {
		if ix.mags[i] == 0 {
			continue
		}
		dist := q.CosineDistance(ix.vecs[i])
		matches = append(matches, Match{Token: ix.tokens[i], Score: 1 - float64(dist)})
	}
	sort.Slice(matches, func(a, b int) bool { return matches[a].Score > matches[b].Score })
	if k > 0 && k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

// Neighbors returns up to k nearest neighbours of an indexed token, excluding
// the token itself.
func (ix *Index) Neighbors(token string, k int) ([]Match, error) {
	pos, ok := ix.byTok[token]
	if !ok {
		return nil, fmt.Errorf("knn: token %q not in index", token)
	}
	limit := k
	if limit > 0 {
		limit++ // the token itself is filtered out below
	}
	matches, err := ix.Query(ix.vecs[pos], limit)
	if err != nil {
		return nil, err
	}
	out := matches[:0]
	for _, m := range matches {
		if m.Token == token {
			continue
		}
		out = append(out, m)
	}
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out, nil
}
