// Package js exposes the document tree, live element collections, and the
// per-origin storage areas to scripts through a goja runtime, as the
// window/document globals a page script expects.
package js

import (
	"github.com/dop251/goja"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/MeshkatShB/lightpanda-browser/dom"
	"github.com/MeshkatShB/lightpanda-browser/storage"
)

// Runtime owns a goja VM with the globals of one document installed. It is
// single-threaded like everything above it: scripts run to completion within
// the caller's turn.
type Runtime struct {
	vm       *goja.Runtime
	log      *logrus.Entry
	document *dom.Node
	store    *storage.Storage

	// nodes caches the JS wrapper per tree node so identity checks in
	// script (a === b) hold; reverse resolves wrappers back to nodes for
	// calls like appendChild.
	nodes   map[*dom.Node]*goja.Object
	reverse map[*goja.Object]*dom.Node
}

// New builds a runtime over document, wiring window, document and the
// storage areas of the document's origin. A nil logger logs at warn level.
func New(document *dom.Node, store *storage.Storage, log *logrus.Logger) (*Runtime, error) {
	if document == nil || document.NodeType != dom.DocumentNode {
		return nil, errors.New("js: runtime requires a document node")
	}
	if store == nil {
		store = storage.New()
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	r := &Runtime{
		vm:       goja.New(),
		log:      log.WithField("component", "js"),
		document: document,
		store:    store,
		nodes:    map[*dom.Node]*goja.Object{},
		reverse:  map[*goja.Object]*dom.Node{},
	}
	if err := r.install(); err != nil {
		return nil, err
	}
	return r, nil
}

// Run evaluates src and returns its completion value.
func (r *Runtime) Run(src string) (goja.Value, error) {
	v, err := r.vm.RunString(src)
	if err != nil {
		r.log.WithError(err).Debug("script evaluation failed")
		return nil, errors.Wrap(err, "js: run")
	}
	return v, nil
}

func (r *Runtime) install() error {
	doc := r.documentObject()
	window := r.vm.NewObject()

	shelf := r.store.Shelf(r.document.Document.Origin)
	local := r.storageObject(shelf.Bucket.Local)
	session := r.storageObject(shelf.Bucket.Session)

	for name, v := range map[string]goja.Value{
		"document":       doc,
		"localStorage":   local,
		"sessionStorage": session,
	} {
		if err := window.Set(name, v); err != nil {
			return errors.Wrapf(err, "js: window.%s", name)
		}
	}

	global := r.vm.GlobalObject()
	for name, v := range map[string]goja.Value{
		"window":         window,
		"self":           window,
		"document":       doc,
		"localStorage":   local,
		"sessionStorage": session,
	} {
		if err := global.Set(name, v); err != nil {
			return errors.Wrapf(err, "js: global %s", name)
		}
	}
	r.log.WithField("origin", r.document.Document.Origin).Debug("globals installed")
	return nil
}

// throw surfaces a Go-side failure to the running script as an exception.
func (r *Runtime) throw(err error) {
	panic(r.vm.NewGoError(err))
}
