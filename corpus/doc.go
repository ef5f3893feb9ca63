// Package corpus turns a stream of raw context strings into the sparse
// incidence structure random indexing needs: for every token, the list of
// (context id, occurrence count) postings, plus the token's global frequency.
// Tokenization is a pluggable collaborator; the indexer itself is a single
// sequential pass, with Merge support for sharded corpora.
package corpus
