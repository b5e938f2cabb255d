package diagram

// SubnetVariant distinguishes public from private subnets. Empty means
// the generic subnet rules apply.
type SubnetVariant string

const (
	SubnetPublic  SubnetVariant = "public"
	SubnetPrivate SubnetVariant = "private"
)

// Node represents a single placed resource in the diagram snapshot.
// ParentID is a single-owner tree edge; callers guarantee the tree is
// acyclic.
type Node struct {
	ID            string        `json:"id"`
	ServiceID     string        `json:"serviceId"`
	ParentID      string        `json:"parentId,omitempty"`
	SubnetVariant SubnetVariant `json:"subnetVariant,omitempty"`
	Label         string        `json:"label,omitempty"`
}

// Edge represents a drawn connection between two nodes. Edges whose
// endpoints cannot be resolved are skipped, not errored.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Snapshot is the root structure consumed from the diagram editor.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Index provides id lookups and ancestry walks over one snapshot.
type Index struct {
	byID map[string]*Node
}

// NewIndex builds an index over the given nodes.
func NewIndex(nodes []Node) *Index {
	idx := &Index{byID: make(map[string]*Node, len(nodes))}
	for i := range nodes {
		idx.byID[nodes[i].ID] = &nodes[i]
	}
	return idx
}

// Node returns the node with the given id, or nil.
func (idx *Index) Node(id string) *Node {
	return idx.byID[id]
}

// Parent returns the parent node of n, or nil if n is at the canvas root
// or the parent id dangles.
func (idx *Index) Parent(n *Node) *Node {
	if n == nil || n.ParentID == "" {
		return nil
	}
	return idx.byID[n.ParentID]
}

// NearestAncestor walks parent links from n (exclusive) and returns the
// first ancestor for which match returns true, or nil.
func (idx *Index) NearestAncestor(n *Node, match func(*Node) bool) *Node {
	for p := idx.Parent(n); p != nil; p = idx.Parent(p) {
		if match(p) {
			return p
		}
	}
	return nil
}

// Depth returns the number of ancestors above n (canvas-root nodes have
// depth 0).
func (idx *Index) Depth(n *Node) int {
	d := 0
	for p := idx.Parent(n); p != nil; p = idx.Parent(p) {
		d++
	}
	return d
}
