package js

import (
	"github.com/dop251/goja"
	"github.com/pkg/errors"

	"github.com/MeshkatShB/lightpanda-browser/collection"
	"github.com/MeshkatShB/lightpanda-browser/dom"
)

var (
	errAppendNonNode  = errors.New("js: appendChild argument is not a node")
	errRemoveNonChild = errors.New("js: removeChild argument is not a child of this node")
)

func (r *Runtime) documentObject() *goja.Object {
	doc := r.nodeObject(r.document)

	doc.Set("getElementsByTagName", func(call goja.FunctionCall) goja.Value {
		tag := call.Argument(0).String()
		return r.collectionObject(r.document.GetElementsByTagName(tag))
	})
	doc.Set("getElementsByClassName", func(call goja.FunctionCall) goja.Value {
		classNames := call.Argument(0).String()
		return r.collectionObject(r.document.GetElementsByClassName(classNames))
	})
	doc.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		n := r.document.GetElementByID(call.Argument(0).String())
		if n == nil {
			return goja.Null()
		}
		return r.nodeObject(n)
	})
	doc.Set("createElement", func(call goja.FunctionCall) goja.Value {
		return r.nodeObject(dom.NewElementNode(r.document, call.Argument(0).String()))
	})
	doc.Set("createTextNode", func(call goja.FunctionCall) goja.Value {
		return r.nodeObject(dom.NewTextNode(r.document, call.Argument(0).String()))
	})
	return doc
}

// collectionObject wraps a live collection. No caching here: the collection
// itself recomputes from the tree on every access, and length is an accessor
// so scripts observe mutations immediately.
func (r *Runtime) collectionObject(c *collection.Collection) *goja.Object {
	obj := r.vm.NewObject()

	length := r.vm.ToValue(func(goja.FunctionCall) goja.Value {
		n, err := c.Length()
		if err != nil {
			r.throw(err)
		}
		return r.vm.ToValue(n)
	})
	obj.DefineAccessorProperty("length", length, nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("item", func(call goja.FunctionCall) goja.Value {
		n, err := c.Item(int(call.Argument(0).ToInteger()))
		if err != nil {
			r.throw(err)
		}
		return r.matchedNode(n)
	})
	obj.Set("namedItem", func(call goja.FunctionCall) goja.Value {
		n, err := c.NamedItem(call.Argument(0).String())
		if err != nil {
			r.throw(err)
		}
		return r.matchedNode(n)
	})
	return obj
}

func (r *Runtime) matchedNode(n collection.Node) goja.Value {
	if n == nil {
		return goja.Null()
	}
	h, ok := n.(dom.Handle)
	if !ok {
		// Collections over foreign tree providers have no scriptable
		// node representation.
		return goja.Null()
	}
	return r.nodeObject(h.Unwrap())
}

func (r *Runtime) nodeObject(n *dom.Node) *goja.Object {
	if obj, ok := r.nodes[n]; ok {
		return obj
	}
	obj := r.vm.NewObject()
	r.nodes[n] = obj
	r.reverse[obj] = n

	obj.Set("nodeType", int(n.NodeType))
	obj.Set("nodeName", n.NodeName)

	id := r.vm.ToValue(func(goja.FunctionCall) goja.Value {
		return r.vm.ToValue(n.ID())
	})
	obj.DefineAccessorProperty("id", id, nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	className := r.vm.ToValue(func(goja.FunctionCall) goja.Value {
		return r.vm.ToValue(n.ClassName())
	})
	obj.DefineAccessorProperty("className", className, nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("getAttribute", func(call goja.FunctionCall) goja.Value {
		v, ok := n.GetAttribute(call.Argument(0).String())
		if !ok {
			return goja.Null()
		}
		return r.vm.ToValue(v)
	})
	obj.Set("setAttribute", func(call goja.FunctionCall) goja.Value {
		n.SetAttribute(call.Argument(0).String(), call.Argument(1).String())
		return goja.Undefined()
	})
	obj.Set("appendChild", func(call goja.FunctionCall) goja.Value {
		child := r.unwrap(call.Argument(0))
		if child == nil {
			r.throw(errAppendNonNode)
		}
		n.AppendChild(child)
		return call.Argument(0)
	})
	obj.Set("removeChild", func(call goja.FunctionCall) goja.Value {
		child := r.unwrap(call.Argument(0))
		if child == nil || n.RemoveChild(child) == nil {
			r.throw(errRemoveNonChild)
		}
		return call.Argument(0)
	})
	obj.Set("getElementsByTagName", func(call goja.FunctionCall) goja.Value {
		return r.collectionObject(n.GetElementsByTagName(call.Argument(0).String()))
	})
	obj.Set("getElementsByClassName", func(call goja.FunctionCall) goja.Value {
		return r.collectionObject(n.GetElementsByClassName(call.Argument(0).String()))
	})
	return obj
}

// unwrap resolves a script value back to the tree node it wraps, or nil.
func (r *Runtime) unwrap(v goja.Value) *dom.Node {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}
	return r.reverse[obj]
}
