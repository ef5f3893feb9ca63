// Package randvec generates the sparse ternary random vectors that random
// indexing assigns to corpus contexts. It includes:
//   - Vector: a sparse ±1 vector stored as sorted position/sign pairs
//   - Generate: a pure, seed-keyed generator (same inputs, same vector)
//   - Source: an interface for on-demand vector lookup by context id
//   - CachedSource: a memoizing Source for repeated lookups
package randvec
