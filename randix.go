// Package randix builds distributional word embeddings by random indexing: a
// streaming, additive dimensionality reduction that assigns every corpus
// context a sparse ternary random vector and accumulates each token's
// embedding as the count-weighted sum of the vectors of the contexts it
// occurs in. The co-occurrence matrix is never materialized, embeddings stay
// exact integers, and adding a new context later touches only the tokens it
// contains.
//
// This package is the facade wiring the pipeline end to end; the stages live
// in the corpus, vocab, randvec and embedding packages, with SQLite
// persistence in store and similarity search in knn.
package randix

import (
	"context"
	"io"

	"github.com/viant/randix/corpus"
	"github.com/viant/randix/embedding"
)

// Build runs the full pipeline over a slice of raw context strings and
// returns the embedding table. A nil tokenizer defaults to whitespace
// splitting; an empty corpus yields an empty table.
func Build(ctx context.Context, contexts []string, tokenize corpus.Tokenizer, cfg Config) (*embedding.Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ix := corpus.NewIndexer(tokenize)
	ix.Strict = cfg.Strict
	for _, c := range contexts {
		if err := ix.Add(c); err != nil {
			return nil, err
		}
	}
	return build(ctx, ix, cfg)
}

// BuildFromReader runs the full pipeline over newline-delimited contexts
// streamed from r.
func BuildFromReader(ctx context.Context, r io.Reader, tokenize corpus.Tokenizer, cfg Config) (*embedding.Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ix := corpus.NewIndexer(tokenize)
	ix.Strict = cfg.Strict
	if err := ix.AddAll(r); err != nil {
		return nil, err
	}
	return build(ctx, ix, cfg)
}

func build(ctx context.Context, ix *corpus.Indexer, cfg Config) (*embedding.Table, error) {
	b := embedding.Builder{
		Dim:      cfg.Dim,
		NonZero:  cfg.NonZero,
		MinCount: cfg.MinCount,
		Seed:     cfg.Seed,
		Workers:  cfg.Workers,
	}
	return b.Build(ctx, ix.Index())
}
