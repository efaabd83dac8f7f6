package collection

import (
	"strings"

	"github.com/pkg/errors"
)

type matcherKind uint

const (
	matchAll matcherKind = iota
	matchTagName
	matchClassName
)

// Matcher decides which element nodes belong to a collection. The variant
// set is closed, so dispatch is a switch over the kind tag rather than an
// interface hierarchy. A Matcher owns private copies of its configuration
// strings: the caller's buffers may be reused or freed as soon as the
// constructor returns.
type Matcher struct {
	kind matcherKind

	// matchTagName
	tag        string
	isWildcard bool

	// matchClassName
	classNames string
}

// MatchAll matches every element node.
func MatchAll() Matcher {
	return Matcher{kind: matchAll}
}

// MatchByTagName matches element nodes whose name equals tag, ASCII
// case-insensitively. The tag "*" matches every element.
func MatchByTagName(tag string) Matcher {
	return Matcher{
		kind:       matchTagName,
		tag:        strings.Clone(tag),
		isWildcard: tag == "*",
	}
}

// MatchByClassName matches element nodes carrying every class token of the
// space-delimited classNames list.
func MatchByClassName(classNames string) Matcher {
	return Matcher{
		kind:       matchClassName,
		classNames: strings.Clone(classNames),
	}
}

// Match reports whether n belongs to the collection. The caller guarantees n
// is an element node. Only provider failures produce an error.
func (m Matcher) Match(n Node) (bool, error) {
	switch m.kind {
	case matchAll:
		return true, nil
	case matchTagName:
		if m.isWildcard {
			return true, nil
		}
		name, err := n.Name()
		if err != nil {
			return false, errors.Wrap(err, "matcher: node name")
		}
		return strings.EqualFold(m.tag, name), nil
	case matchClassName:
		class, _, err := n.Attribute("class")
		if err != nil {
			return false, errors.Wrap(err, "matcher: class attribute")
		}
		// An absent class attribute is an empty token set on the node
		// side, so any required token fails the match.
		for _, token := range strings.Split(m.classNames, " ") {
			if token == "" {
				continue
			}
			if !hasClassToken(class, token) {
				return false, nil
			}
		}
		return true, nil
	}
	return false, nil
}

func hasClassToken(class, token string) bool {
	for _, t := range strings.Fields(class) {
		if t == token {
			return true
		}
	}
	return false
}
