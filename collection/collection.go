package collection

import "github.com/pkg/errors"

// Collection is a live HTMLCollection-equivalent view over root's subtree:
// every accessor re-derives its result from the tree as it is at call time,
// so external insertions and removals are visible without rebuilding the
// Collection. The tree stays owned by the surrounding runtime; the
// Collection holds no lock and borrows nodes without liveness checks beyond
// what a fresh walk from root discovers.
//
// The cursor is a single-slot forward cache over Item: it remembers the last
// matched (index, node) pair and is consulted only for requests at or past
// that index, which makes the dominant ascending 0..length-1 scan amortized
// O(1) per step. It is never revalidated against mutation; if the cached
// node has been detached since, a resumed walk can yield stale results until
// a lower-index request restarts from root. That is a known limitation
// inherited from the lack of any mutation notification.
type Collection struct {
	root        Node
	walker      Walker
	matcher     Matcher
	includeRoot bool
	cursor      *cursor
}

type cursor struct {
	index int
	node  Node
}

// New composes a collection from its parts. includeRoot widens the domain to
// root itself, for collections whose conceptual scope covers the whole
// fragment rather than only its descendants.
func New(root Node, walker Walker, matcher Matcher, includeRoot bool) *Collection {
	return &Collection{
		root:        root,
		walker:      walker,
		matcher:     matcher,
		includeRoot: includeRoot,
	}
}

// ByTagName returns the live collection of elements under root whose name
// equals tag, ASCII case-insensitively; "*" matches all elements.
func ByTagName(root Node, tag string, includeRoot bool) *Collection {
	return New(root, DepthFirst(), MatchByTagName(tag), includeRoot)
}

// ByClassName returns the live collection of elements under root carrying
// every class token in the space-delimited classNames list.
func ByClassName(root Node, classNames string, includeRoot bool) *Collection {
	return New(root, DepthFirst(), MatchByClassName(classNames), includeRoot)
}

func (c *Collection) start() (Node, error) {
	if c.root == nil {
		return nil, nil
	}
	if c.includeRoot {
		return c.root, nil
	}
	return c.walker.Next(c.root, nil)
}

// next returns the walk step after current, a nil current meaning the start
// of the walk.
func (c *Collection) next(current Node) (Node, error) {
	if current == nil {
		return c.start()
	}
	return c.walker.Next(c.root, current)
}

func (c *Collection) matches(n Node) (bool, error) {
	elem, err := n.IsElement()
	if err != nil {
		return false, err
	}
	if !elem {
		return false, nil
	}
	return c.matcher.Match(n)
}

// Length counts the matched elements in root's subtree. O(n) on every call;
// the cost of strict liveness.
func (c *Collection) Length() (int, error) {
	count := 0
	var current Node
	for {
		n, err := c.next(current)
		if err != nil {
			return 0, errors.Wrap(err, "collection: length")
		}
		if n == nil {
			return count, nil
		}
		ok, err := c.matches(n)
		if err != nil {
			return 0, errors.Wrap(err, "collection: length")
		}
		if ok {
			count++
		}
		current = n
	}
}

// Item returns the index-th matched element in tree order, or nil when index
// is out of range. Out of range is a result, not an error; errors only
// report tree-access failures, which leave the cursor as it was before the
// call.
func (c *Collection) Item(index int) (Node, error) {
	if index < 0 {
		return nil, nil
	}

	var current Node
	matched := -1
	if c.cursor != nil && index >= c.cursor.index {
		current = c.cursor.node
		matched = c.cursor.index
	}

	for matched < index {
		n, err := c.next(current)
		if err != nil {
			return nil, errors.Wrapf(err, "collection: item %d", index)
		}
		if n == nil {
			return nil, nil
		}
		ok, err := c.matches(n)
		if err != nil {
			return nil, errors.Wrapf(err, "collection: item %d", index)
		}
		if ok {
			matched++
		}
		current = n
	}

	c.cursor = &cursor{index: matched, node: current}
	return current, nil
}

// NamedItem returns the first matched element in tree order whose id
// attribute equals name or, failing that at each node, whose name attribute
// does. An empty name never matches. The walk bypasses the cursor: name
// lookup has no positional locality to exploit.
func (c *Collection) NamedItem(name string) (Node, error) {
	if name == "" {
		return nil, nil
	}
	var current Node
	for {
		n, err := c.next(current)
		if err != nil {
			return nil, errors.Wrapf(err, "collection: named item %q", name)
		}
		if n == nil {
			return nil, nil
		}
		ok, err := c.matches(n)
		if err != nil {
			return nil, errors.Wrapf(err, "collection: named item %q", name)
		}
		if ok {
			id, found, err := n.Attribute("id")
			if err != nil {
				return nil, errors.Wrapf(err, "collection: named item %q", name)
			}
			if found && id == name {
				return n, nil
			}
			v, found, err := n.Attribute("name")
			if err != nil {
				return nil, errors.Wrapf(err, "collection: named item %q", name)
			}
			if found && v == name {
				return n, nil
			}
		}
		current = n
	}
}

// Empty reports whether the collection currently has no matched elements,
// without counting past the first match.
func (c *Collection) Empty() (bool, error) {
	n, err := c.Item(0)
	if err != nil {
		return false, err
	}
	return n == nil, nil
}
