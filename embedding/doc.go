// Package embedding computes and owns the token embeddings produced by
// random indexing. Each retained token's embedding is the integer sum
// r_t = Σ n_it · v_i over the contexts it occurs in, where v_i is the
// context's sparse random vector and n_it the incidence count. The package
// provides:
//   - Accumulate: the per-token weighted sparse summation
//   - Builder: a parallel one-pass build over a corpus index
//   - Table: the resulting token → dense vector mapping, incrementally
//     extendable one context at a time
//
// Arithmetic is exact integer throughout; floating point only enters in
// downstream consumers such as similarity search.
package embedding
