package js

import (
	"github.com/dop251/goja"

	"github.com/MeshkatShB/lightpanda-browser/storage"
)

// storageObject wraps a bottle with the Web Storage surface. Quota failures
// from Set surface as script exceptions; everything else is a plain value or
// null, mirroring localStorage semantics.
func (r *Runtime) storageObject(b *storage.Bottle) *goja.Object {
	obj := r.vm.NewObject()

	length := r.vm.ToValue(func(goja.FunctionCall) goja.Value {
		return r.vm.ToValue(b.Length())
	})
	obj.DefineAccessorProperty("length", length, nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("key", func(call goja.FunctionCall) goja.Value {
		k, ok := b.Key(int(call.Argument(0).ToInteger()))
		if !ok {
			return goja.Null()
		}
		return r.vm.ToValue(k)
	})
	obj.Set("getItem", func(call goja.FunctionCall) goja.Value {
		v, ok := b.Get(call.Argument(0).String())
		if !ok {
			return goja.Null()
		}
		return r.vm.ToValue(v)
	})
	obj.Set("setItem", func(call goja.FunctionCall) goja.Value {
		if err := b.Set(call.Argument(0).String(), call.Argument(1).String()); err != nil {
			r.throw(err)
		}
		return goja.Undefined()
	})
	obj.Set("removeItem", func(call goja.FunctionCall) goja.Value {
		b.Remove(call.Argument(0).String())
		return goja.Undefined()
	})
	obj.Set("clear", func(call goja.FunctionCall) goja.Value {
		b.Clear()
		return goja.Undefined()
	})
	return obj
}
