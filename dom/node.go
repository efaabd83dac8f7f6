package dom

import "strings"

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// NodeList is an ordered list of nodes, kept in sync with the sibling links.
type NodeList []*Node

func (l NodeList) IndexOf(n *Node) int {
	for i := range l {
		if l[i] == n {
			return i
		}
	}
	return -1
}

// Node is https://dom.spec.whatwg.org/#node. The tree owns its nodes; the
// collection engine only ever borrows them through Handle (handle.go).
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Text
	*Comment
	*Document
	*DocumentType
}

func NewDocumentNode(origin string) *Node {
	n := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{Type: "html", Origin: origin, URL: origin},
	}
	n.OwnerDocument = n
	return n
}

func NewElementNode(od *Node, name string) *Node {
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			LocalName: name,
		},
	}
	n.Element.Attributes = NewNamedNodeMap(nil, n)
	return n
}

// NewTextNode returns a text node with its Data section filled.
func NewTextNode(od *Node, data string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text: &Text{
			CharacterData: &CharacterData{Data: data, Length: len(data)},
		},
	}
}

// NewCommentNode returns a comment node with its Data section filled.
func NewCommentNode(od *Node, data string) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment: &Comment{
			CharacterData: &CharacterData{Data: data, Length: len(data)},
		},
	}
}

func NewDocTypeNode(name, pub, sys string) *Node {
	return &Node{
		NodeType: DocumentTypeNode,
		NodeName: name,
		DocumentType: &DocumentType{
			Name:     name,
			PublicID: pub,
			SystemID: sys,
		},
	}
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

func (n *Node) GetRootNode() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}

// https://dom.whatwg.org/#concept-node-append
func (n *Node) AppendChild(child *Node) *Node {
	if n.LastChild != nil {
		child.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = child
	} else {
		n.FirstChild = child
	}
	child.ParentNode = n
	n.LastChild = child
	n.ChildNodes = append(n.ChildNodes, child)
	return child
}

// InsertBefore inserts child before ref in n's child list. A nil ref appends.
// Returns nil when ref is not a child of n.
func (n *Node) InsertBefore(child, ref *Node) *Node {
	if ref == nil {
		return n.AppendChild(child)
	}
	i := n.ChildNodes.IndexOf(ref)
	if i < 0 {
		return nil
	}
	n.ChildNodes = append(n.ChildNodes, nil)
	copy(n.ChildNodes[i+1:], n.ChildNodes[i:])
	n.ChildNodes[i] = child

	child.ParentNode = n
	child.NextSibling = ref
	child.PreviousSibling = ref.PreviousSibling
	if ref.PreviousSibling != nil {
		ref.PreviousSibling.NextSibling = child
	} else {
		n.FirstChild = child
	}
	ref.PreviousSibling = child
	return child
}

// RemoveChild detaches child from n, clearing child's links into the tree.
// Returns nil when child is not a child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	i := n.ChildNodes.IndexOf(child)
	if i < 0 {
		return nil
	}
	n.ChildNodes = append(n.ChildNodes[:i], n.ChildNodes[i+1:]...)
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = child.NextSibling
	} else {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PreviousSibling = child.PreviousSibling
	} else {
		n.LastChild = child.PreviousSibling
	}
	child.ParentNode = nil
	child.PreviousSibling = nil
	child.NextSibling = nil
	return child
}

func serializeNodeType(node *Node) string {
	switch node.NodeType {
	case ElementNode:
		e := "<" + node.NodeName
		if node.Attributes != nil {
			for _, name := range node.Attributes.Names() {
				e += " " + name + "=\"" + node.Attributes.Attrs[name].Value + "\""
			}
		}
		return e + ">"
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case DocumentTypeNode:
		return "<!DOCTYPE " + node.DocumentType.Name + ">"
	case DocumentNode:
		return "#document"
	default:
		return "#unknown"
	}
}

func (n *Node) serialize(indent int) string {
	ser := serializeNodeType(n) + "\n"
	if n.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < indent; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range n.ChildNodes {
		ser += child.serialize(indent + 1)
	}
	return ser
}

func (n *Node) String() string {
	return strings.TrimRight(n.serialize(0), "\n")
}
