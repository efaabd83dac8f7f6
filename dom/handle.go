package dom

import "github.com/MeshkatShB/lightpanda-browser/collection"

// Handle adapts a *Node to the collection engine's tree-provider interface.
// Handles are value types: two handles to the same node compare equal, which
// the walker relies on for its root bound. The in-memory tree cannot fail,
// so every accessor returns a nil error.
type Handle struct {
	n *Node
}

// NodeOf wraps n for use as a collection root or step target. A nil node
// wraps to a nil interface so absence checks stay uniform on the engine side.
func NodeOf(n *Node) collection.Node {
	if n == nil {
		return nil
	}
	return Handle{n: n}
}

// Unwrap returns the underlying tree node.
func (h Handle) Unwrap() *Node {
	return h.n
}

func (h Handle) IsElement() (bool, error) {
	return h.n.NodeType == ElementNode, nil
}

func (h Handle) Name() (string, error) {
	return h.n.NodeName, nil
}

func (h Handle) Parent() (collection.Node, error) {
	return NodeOf(h.n.ParentNode), nil
}

func (h Handle) FirstChild() (collection.Node, error) {
	return NodeOf(h.n.FirstChild), nil
}

func (h Handle) LastChild() (collection.Node, error) {
	return NodeOf(h.n.LastChild), nil
}

func (h Handle) NextSibling() (collection.Node, error) {
	return NodeOf(h.n.NextSibling), nil
}

func (h Handle) Attribute(name string) (string, bool, error) {
	v, ok := h.n.GetAttribute(name)
	return v, ok, nil
}
