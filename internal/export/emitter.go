// Package export renders an audited snapshot into a skeleton Terraform
// configuration. It is a convenience surface for collaborators; the
// validation core never depends on it.
package export

import (
	"sync"

	"github.com/cloudsketch/engine/internal/diagram"
)

// RefMap maps node IDs to Terraform resource addresses
// (e.g. "node-3" -> "aws_vpc.node_3").
type RefMap map[string]string

// Emitter renders one service's node into an HCL resource block.
type Emitter interface {
	ServiceID() string
	Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error)
}

// Default is the global emitter registry.
var Default = NewRegistry()

// Registry holds per-service emitters.
type Registry struct {
	mu       sync.RWMutex
	emitters map[string]Emitter
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{emitters: make(map[string]Emitter)}
}

// Register adds an emitter for the given canonical service id.
func (r *Registry) Register(serviceID string, e Emitter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emitters[serviceID] = e
}

// Get returns the emitter for the service id, or nil and false.
func (r *Registry) Get(serviceID string) (Emitter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.emitters[serviceID]
	return e, ok
}
