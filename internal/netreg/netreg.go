// Package netreg derives a PeerId from a peer's network name and tracks
// which peers currently have a live outbound connection. The spec treats
// peer lookup as part of the out-of-scope authenticated RPC transport; this
// package is the minimal concrete seam a real transport plugs into.
package netreg

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"google.golang.org/grpc"
)

// PeerIdSize is the width in bytes of a derived PeerId.
const PeerIdSize = 20

// PeerId is a derived network identifier: a pure function of the peer's
// network name, used to look up a live connection in the Registry.
type PeerId [PeerIdSize]byte

// DerivePeerId computes the PeerId for a network name.
func DerivePeerId(name string) PeerId {
	sum := sha256.Sum256([]byte(name))
	var id PeerId
	copy(id[:], sum[:PeerIdSize])
	return id
}

func (id PeerId) String() string {
	return fmt.Sprintf("%x", [PeerIdSize]byte(id))
}

// Registry tracks active outbound *grpc.ClientConn handles keyed by PeerId.
// Handlers never dial directly; they ask the Registry for whatever
// connection is already established, matching the source's
// network.peer(PeerId) lookup.
type Registry struct {
	mu    sync.RWMutex
	peers map[PeerId]*grpc.ClientConn
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{peers: make(map[PeerId]*grpc.ClientConn)}
}

// Connect registers conn as the live connection for name, deriving its
// PeerId.
func (r *Registry) Connect(name string, conn *grpc.ClientConn) {
	id := DerivePeerId(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.peers[id] = conn
}

// Disconnect removes any registered connection for name.
func (r *Registry) Disconnect(name string) {
	id := DerivePeerId(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.peers, id)
}

// Peer returns the live connection for name, if any.
func (r *Registry) Peer(name string) (*grpc.ClientConn, bool) {
	id := DerivePeerId(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.peers[id]
	return conn, ok
}
