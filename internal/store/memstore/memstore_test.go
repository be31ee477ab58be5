package memstore

import (
	"testing"

	"github.com/dagconsensus/worker/internal/batchtypes"
)

func TestMemStore_InsertGet(t *testing.T) {
	s := New()
	b := batchtypes.NewBatch([][]byte{{1, 2, 3}})
	d := b.Digest()

	if _, ok, _ := s.Get(d); ok {
		t.Fatal("expected miss before Insert")
	}

	if err := s.Insert(d, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, ok, err := s.Get(d)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after Insert")
	}
	if got.Digest() != d {
		t.Fatal("returned batch does not match the inserted one")
	}
}

func TestMemStore_InsertIsIdempotent(t *testing.T) {
	s := New()
	b := batchtypes.NewBatch([][]byte{{9}})
	d := b.Digest()

	if err := s.Insert(d, b); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	if err := s.Insert(d, b); err != nil {
		t.Fatalf("second Insert: %v", err)
	}
}

func TestMemStore_MultiGet_MissesAreNil(t *testing.T) {
	s := New()
	present := batchtypes.NewBatch([][]byte{{1}})
	pd := present.Digest()
	if err := s.Insert(pd, present); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	var missing batchtypes.BatchDigest
	missing[0] = 0xff

	got, err := s.MultiGet([]batchtypes.BatchDigest{pd, missing})
	if err != nil {
		t.Fatalf("MultiGet: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("MultiGet returned %d entries, want 2", len(got))
	}
	if got[0] == nil || got[0].Digest() != pd {
		t.Fatal("MultiGet did not return the present batch in position 0")
	}
	if got[1] != nil {
		t.Fatal("MultiGet should return nil for a missing digest")
	}
}

func TestMemStore_Remove(t *testing.T) {
	s := New()
	b := batchtypes.NewBatch([][]byte{{7}})
	d := b.Digest()
	_ = s.Insert(d, b)

	if err := s.Remove(d); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := s.Get(d); ok {
		t.Fatal("expected miss after Remove")
	}
	// Removing again must not error.
	if err := s.Remove(d); err != nil {
		t.Fatalf("Remove of absent digest: %v", err)
	}
}
