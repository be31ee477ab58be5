package leveldbstore

import (
	"testing"

	"github.com/dagconsensus/worker/internal/batchtypes"
)

func TestEncodeDecodeBatch_RoundTrip(t *testing.T) {
	b := batchtypes.NewBatch([][]byte{{1, 2, 3}, {}, {9}})

	raw, err := encodeBatch(b)
	if err != nil {
		t.Fatalf("encodeBatch: %v", err)
	}

	got, err := decodeBatch(raw)
	if err != nil {
		t.Fatalf("decodeBatch: %v", err)
	}
	if got.Digest() != b.Digest() {
		t.Fatal("decoded batch does not match the original")
	}
}
