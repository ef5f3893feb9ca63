// Package store persists embedding tables in SQLite using the pure-Go
// modernc.org/sqlite driver. It is the serialization collaborator the core
// pipeline deliberately leaves external: the embeddings table holds one row
// per retained token (token, frequency, vector BLOB) plus a metadata table
// recording the build parameters, so a loaded snapshot can be validated
// against the configuration that produced it. An emb_cosine SQL function is
// available for similarity queries over the stored BLOBs.
package store
