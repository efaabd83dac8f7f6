package main

import (
	"github.com/sirupsen/logrus"

	"github.com/MeshkatShB/lightpanda-browser/dom"
	"github.com/MeshkatShB/lightpanda-browser/js"
	"github.com/MeshkatShB/lightpanda-browser/storage"
)

func main() {
	doc := dom.NewDocumentNode("https://example.com")
	html := doc.AppendChild(dom.NewElementNode(doc, "html"))
	body := html.AppendChild(dom.NewElementNode(doc, "body"))
	p := body.AppendChild(dom.NewElementNode(doc, "p"))
	p.SetAttribute("id", "greeting")
	p.AppendChild(dom.NewTextNode(doc, "hello"))

	rt, err := js.New(doc, storage.New(), nil)
	if err != nil {
		logrus.WithError(err).Fatal("runtime setup")
	}
	v, err := rt.Run(`
		localStorage.setItem("visited", "yes");
		document.getElementById("greeting").id + ": " +
			document.getElementsByTagName("p").length;
	`)
	if err != nil {
		logrus.WithError(err).Fatal("script")
	}
	logrus.WithField("result", v.Export()).Info("done")
}
