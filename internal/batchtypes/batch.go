// Package batchtypes defines the data the worker disseminates: the opaque
// transaction batch and its content digest.
package batchtypes

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the width in bytes of a BatchDigest.
const DigestSize = 32

// BatchDigest identifies a Batch. Equality is defined over its bytes, so it
// is safe to use as a map key.
type BatchDigest [DigestSize]byte

// String renders the digest as hex, mainly for logging.
func (d BatchDigest) String() string {
	const hextable = "0123456789abcdef"
	buf := make([]byte, DigestSize*2)
	for i, b := range d {
		buf[i*2] = hextable[b>>4]
		buf[i*2+1] = hextable[b&0x0f]
	}
	return string(buf)
}

// Batch is an opaque, ordered sequence of transactions plus enough metadata
// to compute a digest and a wire size. The zero value is not a valid batch;
// use NewBatch.
type Batch struct {
	Transactions [][]byte
}

// NewBatch copies txs into a new Batch. The caller's slices are not retained.
func NewBatch(txs [][]byte) *Batch {
	owned := make([][]byte, len(txs))
	for i, tx := range txs {
		owned[i] = append([]byte(nil), tx...)
	}
	return &Batch{Transactions: owned}
}

// Size returns the batch's size in bytes, used for response-size budgeting.
// It mirrors the wire cost of the batch: the raw transaction bytes plus a
// fixed per-transaction length-prefix overhead.
func (b *Batch) Size() int {
	n := 0
	for _, tx := range b.Transactions {
		n += len(tx) + 4
	}
	return n
}

// Digest computes the BatchDigest over the batch's canonical encoding. The
// encoding is the transaction count followed by each transaction's
// length-prefixed bytes, so that two batches with equal content (and equal
// transaction order) always hash to the same digest, and no two distinct
// contents collide on the encoding itself.
func (b *Batch) Digest() BatchDigest {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only errors on a bad key, and we pass none.
		panic("batchtypes: blake2b.New256: " + err.Error())
	}

	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(b.Transactions)))
	h.Write(lenBuf[:])

	for _, tx := range b.Transactions {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(tx)))
		h.Write(lenBuf[:])
		h.Write(tx)
	}

	var digest BatchDigest
	copy(digest[:], h.Sum(nil))
	return digest
}
