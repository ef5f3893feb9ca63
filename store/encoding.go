package store

import (
	"encoding/binary"
	"fmt"
)

// EncodeVector encodes a dense integer embedding into a BLOB suitable for
// SQLite storage: a little-endian sequence of int64 values without a length
// prefix; the dimension is derived from the BLOB size on decode.
func EncodeVector(vec []int64) ([]byte, error) {
	if len(vec) == 0 {
		return nil, nil
	}
	b := make([]byte, len(vec)*8)
	for i, v := range vec {
		binary.LittleEndian.PutUint64(b[i*8:], uint64(v))
	}
	return b, nil
}

// DecodeVector decodes a BLOB produced by EncodeVector back into a dense
// integer embedding.
func DecodeVector(b []byte) ([]int64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("store: invalid vector blob length %d (not multiple of 8)", len(b))
	}
	n := len(b) / 8
	vec := make([]int64, n)
	for i := 0; i < n; i++ {
		vec[i] = int64(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return vec, nil
}
