package collection

type walkerKind uint

const (
	walkDepthFirst walkerKind = iota
)

// Walker is a stateless tree-traversal strategy. Only depth-first pre-order
// exists today; the kind tag leaves room for others.
type Walker struct {
	kind walkerKind
}

// DepthFirst returns the document-tree-order walker.
func DepthFirst() Walker {
	return Walker{kind: walkDepthFirst}
}

// Next returns the node after current in the walk bounded by root, or nil
// when the walk is exhausted. A nil current starts the walk at root, whose
// first child is the first step; root itself is never a step target. Each
// step is O(1) amortized: no recursion, no auxiliary storage.
func (w Walker) Next(root, current Node) (Node, error) {
	switch w.kind {
	case walkDepthFirst:
		return nextDepthFirst(root, current)
	}
	return nil, nil
}

func nextDepthFirst(root, current Node) (Node, error) {
	n := current
	if n == nil {
		n = root
	}

	// Descend.
	first, err := n.FirstChild()
	if err != nil {
		return nil, err
	}
	if first != nil {
		return first, nil
	}

	// Advance, climbing to the nearest ancestor with an unvisited sibling.
	// The root bound is checked before the sibling step so the walk never
	// escapes root's subtree.
	for {
		if n == root {
			return nil, nil
		}
		next, err := n.NextSibling()
		if err != nil {
			return nil, err
		}
		if next != nil {
			return next, nil
		}
		parent, err := n.Parent()
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, nil
		}
		n = parent
	}
}
