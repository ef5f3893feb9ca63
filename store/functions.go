package store

import (
	"database/sql/driver"
	"fmt"
	"math"

	sqlite "modernc.org/sqlite"
)

// RegisterFunctions registers emb_cosine with the driver so it is available
// on connections opened after this call. Registration is idempotent; the
// driver rejects duplicates and the error is ignored here.
func RegisterFunctions() {
	_ = sqlite.RegisterDeterministicScalarFunction("emb_cosine", 2, embCosineImpl)
}

func embCosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("emb_cosine: expected 2 arguments, got %d", len(args))
	}
	a, err := asVector(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asVector(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	return cosine(a, b)
}

func asVector(arg driver.Value) ([]int64, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return DecodeVector(v)
	default:
		return nil, fmt.Errorf("emb_cosine: unsupported argument type %T; want BLOB", arg)
	}
}

func cosine(a, b []int64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("emb_cosine: dimension mismatch %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("emb_cosine: empty vectors")
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, fmt.Errorf("emb_cosine: zero-magnitude vector")
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}
