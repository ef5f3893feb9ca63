package corpus

import (
	"bufio"
	"fmt"
	"io"
)

// Indexer consumes raw contexts one at a time and builds an Index. It is a
// single-pass, single-goroutine stage; shard a large corpus across several
// indexers (NewIndexerAt with disjoint id bases) and combine with Index.Merge.
type Indexer struct {
	// Strict escalates malformed contexts into errors. When false (the
	// default), a context whose tokenization fails is skipped and counted
	// instead of aborting the pass.
	Strict bool

	tokenize Tokenizer
	index    *Index
	skipped  int64
}

// NewIndexer creates an Indexer assigning context ids from 0. A nil tokenizer
// defaults to Whitespace.
func NewIndexer(tokenize Tokenizer) *Indexer {
	return NewIndexerAt(tokenize, 0)
}

// NewIndexerAt creates an Indexer whose first context receives id base. Used
// to give each corpus shard a disjoint id range ahead of Index.Merge.
func NewIndexerAt(tokenize Tokenizer, base int64) *Indexer {
	if tokenize == nil {
		tokenize = Whitespace
	}
	return &Indexer{tokenize: tokenize, index: newIndex(base)}
}

// Add tokenizes one raw context and records it. Malformed contexts are
// skipped (lenient mode) or returned as errors (strict mode); skipped
// contexts consume no context id.
func (ix *Indexer) Add(text string) error {
	tokens, err := ix.tokenize(text)
	if err != nil {
		if ix.Strict {
			return fmt.Errorf("corpus: context %d: %w", ix.index.next, err)
		}
		ix.skipped++
		return nil
	}
	ix.index.addTokens(tokens)
	return nil
}

// AddTokens records an already tokenized context and returns its assigned id.
func (ix *Indexer) AddTokens(tokens []string) int64 {
	return ix.index.addTokens(tokens)
}

// AddAll reads newline-delimited contexts from r until EOF. Each line is one
// context.
func (ix *Indexer) AddAll(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := ix.Add(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("corpus: reading corpus: %w", err)
	}
	return nil
}

// Skipped returns the number of malformed contexts dropped in lenient mode.
func (ix *Indexer) Skipped() int64 { return ix.skipped }

// Index returns the incidence structure built so far.
func (ix *Indexer) Index() *Index { return ix.index }
