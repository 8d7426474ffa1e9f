package oobind

// NodeID is the stable index of an entity inside the library that created it.
type NodeID uint32

// Node is implemented by every shared IR entity. Two nodes are the same
// entity only when they come from the same library and carry the same ID;
// structurally identical nodes are still distinct.
type Node interface {
	NodeID() NodeID
	owner() *arena
}

// arena allocates node IDs for one library builder and keeps every node
// addressable by its ID.
type arena struct {
	nodes []Node
}

// node is embedded by value in every entity.
type node struct {
	id NodeID
	a  *arena
}

func (n *node) NodeID() NodeID { return n.id }
func (n *node) owner() *arena  { return n.a }

// register assigns the next ID to n and records it.
func (a *arena) register(n Node, slot *node) {
	slot.id = NodeID(len(a.nodes))
	slot.a = a
	a.nodes = append(a.nodes, n)
}

func (a *arena) lookup(id NodeID) (Node, bool) {
	if int(id) >= len(a.nodes) {
		return nil, false
	}
	return a.nodes[id], true
}

// SameNode reports identity equality.
func SameNode(x, y Node) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return x.owner() == y.owner() && x.NodeID() == y.NodeID()
}
