// Package collection implements live, spec-conformant element collections
// over an externally owned document tree: a depth-first walker, a closed set
// of match strategies, and an HTMLCollection-equivalent view with a forward
// cursor cache. https://dom.spec.whatwg.org/#htmlcollection
package collection

// Node is the tree-provider boundary. The engine never allocates, frees, or
// mutates nodes; it borrows them between calls and re-derives everything
// reachable from a collection's root on every access. Providers back the
// interface however they like (an in-memory tree, an arena of indices, a
// remote page) and may fail on any accessor; failures are propagated to the
// caller of the collection operation, never swallowed.
//
// Implementations must be comparable, and two Node values obtained for the
// same underlying node must compare equal: the walker bounds its traversal
// by comparing against the root. Absent relations are a nil Node with a nil
// error, not an error.
type Node interface {
	// IsElement discriminates element nodes from text, comment, document
	// and other node kinds.
	IsElement() (bool, error)

	// Name returns the node's name, e.g. "p" or "#text".
	Name() (string, error)

	Parent() (Node, error)
	FirstChild() (Node, error)
	LastChild() (Node, error)
	NextSibling() (Node, error)

	// Attribute looks an attribute up by name ("id", "name", "class").
	// The second result reports whether the attribute is present.
	Attribute(name string) (string, bool, error)
}
