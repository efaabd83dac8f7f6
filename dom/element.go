package dom

import "github.com/MeshkatShB/lightpanda-browser/collection"

// Element is https://dom.spec.whatwg.org/#interface-element
type Element struct {
	LocalName  string
	Attributes *NamedNodeMap
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.NodeType != ElementNode || n.Element == nil {
		return "", false
	}
	a := n.Attributes.GetNamedItem(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

func (n *Node) SetAttribute(name, value string) {
	if n.NodeType != ElementNode || n.Element == nil {
		return
	}
	n.Attributes.SetNamedItem(&Attr{LocalName: name, Value: value})
}

func (n *Node) RemoveAttribute(name string) {
	if n.NodeType != ElementNode || n.Element == nil {
		return
	}
	n.Attributes.RemoveNamedItem(name)
}

func (n *Node) HasAttribute(name string) bool {
	_, ok := n.GetAttribute(name)
	return ok
}

func (n *Node) ID() string {
	id, _ := n.GetAttribute("id")
	return id
}

func (n *Node) ClassName() string {
	class, _ := n.GetAttribute("class")
	return class
}

// GetElementsByTagName is https://dom.spec.whatwg.org/#dom-element-getelementsbytagname.
// The returned collection is live: it covers n's descendants as they are at
// the time of each access, not at the time of this call.
func (n *Node) GetElementsByTagName(tag string) *collection.Collection {
	return collection.ByTagName(NodeOf(n), tag, false)
}

// GetElementsByClassName is https://dom.spec.whatwg.org/#dom-element-getelementsbyclassname
func (n *Node) GetElementsByClassName(classNames string) *collection.Collection {
	return collection.ByClassName(NodeOf(n), classNames, false)
}
