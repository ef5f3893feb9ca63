// Package knn provides brute-force cosine nearest-neighbour search over an
// embedding table. It is a downstream consumer of the random indexing core:
// integer embeddings are converted to float32 once at build time and scored
// with SIMD-accelerated cosine distance.
package knn
