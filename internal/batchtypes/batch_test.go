package batchtypes

import "testing"

func TestNewBatch_DeepCopies(t *testing.T) {
	tx := []byte("hello")
	txs := [][]byte{tx}
	b := NewBatch(txs)

	tx[0] = 'H'
	if string(b.Transactions[0]) == string(tx) {
		t.Fatal("NewBatch did not deep-copy its input transactions")
	}
}

func TestBatch_Size(t *testing.T) {
	b := NewBatch([][]byte{{1, 2, 3}, {4, 5}})
	want := (3 + 4) + (2 + 4)
	if got := b.Size(); got != want {
		t.Fatalf("Size() = %d, want %d", got, want)
	}
}

func TestBatch_Digest_Deterministic(t *testing.T) {
	b1 := NewBatch([][]byte{{1, 2, 3}, {4, 5}})
	b2 := NewBatch([][]byte{{1, 2, 3}, {4, 5}})

	if b1.Digest() != b2.Digest() {
		t.Fatal("identical batches produced different digests")
	}
}

func TestBatch_Digest_SensitiveToOrder(t *testing.T) {
	b1 := NewBatch([][]byte{{1}, {2}})
	b2 := NewBatch([][]byte{{2}, {1}})

	if b1.Digest() == b2.Digest() {
		t.Fatal("reordering transactions did not change the digest")
	}
}

func TestBatch_Digest_SensitiveToBoundary(t *testing.T) {
	// {1,2} and {1},{2} must not collide: the length-prefixed encoding
	// must distinguish "one two-byte tx" from "two one-byte txs".
	b1 := NewBatch([][]byte{{1, 2}})
	b2 := NewBatch([][]byte{{1}, {2}})

	if b1.Digest() == b2.Digest() {
		t.Fatal("digest does not distinguish transaction boundaries")
	}
}

func TestBatchDigest_String(t *testing.T) {
	var d BatchDigest
	d[0] = 0xab
	d[1] = 0xcd
	if got := d.String(); got[:4] != "abcd" {
		t.Fatalf("String() = %q, want it to start with \"abcd\"", got)
	}
}
