package collection_test

import (
	"github.com/MeshkatShB/lightpanda-browser/collection"
	"github.com/MeshkatShB/lightpanda-browser/dom"
)

// el describes one element of a test fixture tree.
type el struct {
	name  string
	attrs map[string]string
	kids  []el
}

// build materializes e under parent and returns the new node.
func build(doc, parent *dom.Node, e el) *dom.Node {
	n := dom.NewElementNode(doc, e.name)
	for k, v := range e.attrs {
		n.SetAttribute(k, v)
	}
	parent.AppendChild(n)
	for _, kid := range e.kids {
		build(doc, n, kid)
	}
	return n
}

// document builds a #document with the given top-level elements and returns
// it.
func document(elems ...el) *dom.Node {
	doc := dom.NewDocumentNode("https://example.com")
	for _, e := range elems {
		build(doc, doc, e)
	}
	return doc
}

// names runs the walk from root to exhaustion and collects node names,
// ignoring any collection-level cursor.
func names(root collection.Node) ([]string, error) {
	w := collection.DepthFirst()
	var out []string
	var current collection.Node
	for {
		n, err := w.Next(root, current)
		if err != nil {
			return nil, err
		}
		if n == nil {
			return out, nil
		}
		name, err := n.Name()
		if err != nil {
			return nil, err
		}
		out = append(out, name)
		current = n
	}
}

// unwrap asserts the collection node came from the dom tree.
func unwrap(n collection.Node) *dom.Node {
	if n == nil {
		return nil
	}
	return n.(dom.Handle).Unwrap()
}
