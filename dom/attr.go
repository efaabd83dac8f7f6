package dom

import (
	"sort"
	"strings"
)

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	LocalName    string
	Value        string
	OwnerElement *Node
}

func NewNamedNodeMap(attrs map[string]string, oe *Node) *NamedNodeMap {
	m := &NamedNodeMap{
		Attrs:             make(map[string]*Attr, len(attrs)),
		AssociatedElement: oe,
	}
	for k, v := range attrs {
		m.SetNamedItem(&Attr{LocalName: k, Value: v})
	}
	return m
}

type NamedNodeMap struct {
	Attrs             map[string]*Attr
	AssociatedElement *Node
}

func (m *NamedNodeMap) Length() int {
	return len(m.Attrs)
}

// GetNamedItem looks an attribute up by its lowercased name, per the HTML
// document case rules.
func (m *NamedNodeMap) GetNamedItem(name string) *Attr {
	if a, ok := m.Attrs[strings.ToLower(name)]; ok {
		return a
	}
	return nil
}

func (m *NamedNodeMap) SetNamedItem(a *Attr) *Attr {
	if a == nil {
		return nil
	}
	a.LocalName = strings.ToLower(a.LocalName)
	a.OwnerElement = m.AssociatedElement
	old := m.Attrs[a.LocalName]
	m.Attrs[a.LocalName] = a
	return old
}

func (m *NamedNodeMap) RemoveNamedItem(name string) *Attr {
	name = strings.ToLower(name)
	old := m.Attrs[name]
	delete(m.Attrs, name)
	return old
}

// Names returns the attribute names in a stable order for serialization.
func (m *NamedNodeMap) Names() []string {
	names := make([]string, 0, len(m.Attrs))
	for name := range m.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
