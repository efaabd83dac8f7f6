package dom

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL        string
	Origin     string
	Type       string
	CompatMode string
}

// GetElementByID is https://dom.spec.whatwg.org/#dom-nonelementparentnode-getelementbyid.
// It returns the first element in tree order among n's descendants whose id
// attribute equals id, or nil. An empty id never matches.
func (n *Node) GetElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	for _, c := range n.ChildNodes {
		if c.NodeType == ElementNode {
			if v, ok := c.GetAttribute("id"); ok && v == id {
				return c
			}
		}
		if found := c.GetElementByID(id); found != nil {
			return found
		}
	}
	return nil
}
