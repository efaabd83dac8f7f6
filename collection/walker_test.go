package collection_test

import (
	"reflect"
	"testing"

	"github.com/MeshkatShB/lightpanda-browser/dom"
)

type walkerTestcase struct {
	name     string // subtest name, also the name of the walk root element
	tree     el
	expected []string // node names in walk order, root excluded
}

var walkerTests = []walkerTestcase{
	{
		name:     "leaf",
		tree:     el{name: "div"},
		expected: nil,
	},
	{
		name: "linear-chain",
		tree: el{name: "html", kids: []el{
			{name: "body", kids: []el{
				{name: "div", kids: []el{
					{name: "p"},
				}},
			}},
		}},
		expected: []string{"body", "div", "p"},
	},
	{
		name: "children-before-siblings",
		tree: el{name: "html", kids: []el{
			{name: "head", kids: []el{
				{name: "title"},
			}},
			{name: "body", kids: []el{
				{name: "div", kids: []el{
					{name: "span"},
					{name: "p"},
				}},
				{name: "footer"},
			}},
		}},
		expected: []string{"head", "title", "body", "div", "span", "p", "footer"},
	},
	{
		name: "deep-backtrack",
		tree: el{name: "html", kids: []el{
			{name: "a", kids: []el{
				{name: "b", kids: []el{
					{name: "c"},
				}},
			}},
			{name: "d"},
		}},
		expected: []string{"a", "b", "c", "d"},
	},
}

func TestDepthFirstWalkOrder(t *testing.T) {
	for _, tt := range walkerTests {
		runTestDepthFirstWalkOrder(tt, t)
	}
}

func runTestDepthFirstWalkOrder(tt walkerTestcase, t *testing.T) {
	t.Run(tt.name, func(t *testing.T) {
		t.Parallel()
		doc := document(tt.tree)
		root := doc.FirstChild
		got, err := names(dom.NodeOf(root))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Expected walk order %v, got %v\n", tt.expected, got)
		}
	})
}

// TestWalkBoundedToSubtree makes sure a walk rooted below the document never
// escapes into the root's siblings or ancestors.
func TestWalkBoundedToSubtree(t *testing.T) {
	doc := document(el{name: "html", kids: []el{
		{name: "head", kids: []el{{name: "title"}}},
		{name: "body", kids: []el{{name: "div"}, {name: "p"}}},
		{name: "footer"},
	}})
	body := doc.FirstChild.FirstChild.NextSibling
	if body.NodeName != "body" {
		t.Fatalf("fixture broke: expected body, got %s", body.NodeName)
	}
	got, err := names(dom.NodeOf(body))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"div", "p"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected walk order %v, got %v\n", expected, got)
	}
}

// TestWalkSeesTextNodes verifies the walker steps over every node kind; the
// element filter belongs to the collection, not the walker.
func TestWalkSeesTextNodes(t *testing.T) {
	doc := dom.NewDocumentNode("https://example.com")
	div := doc.AppendChild(dom.NewElementNode(doc, "div"))
	div.AppendChild(dom.NewTextNode(doc, "hi"))
	div.AppendChild(dom.NewElementNode(doc, "p"))

	got, err := names(dom.NodeOf(doc))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"div", "#text", "p"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected walk order %v, got %v\n", expected, got)
	}
}
