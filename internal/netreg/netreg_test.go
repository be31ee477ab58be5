package netreg

import "testing"

func TestDerivePeerId_Deterministic(t *testing.T) {
	if DerivePeerId("worker-1") != DerivePeerId("worker-1") {
		t.Fatal("DerivePeerId is not deterministic")
	}
}

func TestDerivePeerId_DistinctNames(t *testing.T) {
	if DerivePeerId("worker-1") == DerivePeerId("worker-2") {
		t.Fatal("distinct names collided on PeerId")
	}
}

func TestRegistry_ConnectDisconnect(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Peer("worker-1"); ok {
		t.Fatal("expected no connection before Connect")
	}

	// A nil *grpc.ClientConn is a fine stand-in here: the Registry only
	// stores and returns the pointer, it never dereferences it.
	r.Connect("worker-1", nil)
	if _, ok := r.Peer("worker-1"); !ok {
		t.Fatal("expected a connection after Connect")
	}

	r.Disconnect("worker-1")
	if _, ok := r.Peer("worker-1"); ok {
		t.Fatal("expected no connection after Disconnect")
	}
}
