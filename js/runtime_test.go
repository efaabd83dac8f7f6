package js

import (
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/require"

	"github.com/MeshkatShB/lightpanda-browser/dom"
	"github.com/MeshkatShB/lightpanda-browser/storage"
)

func testPage(t *testing.T) (*Runtime, *dom.Node) {
	t.Helper()
	doc := dom.NewDocumentNode("https://example.com")
	html := doc.AppendChild(dom.NewElementNode(doc, "html"))
	body := html.AppendChild(dom.NewElementNode(doc, "body"))
	div := body.AppendChild(dom.NewElementNode(doc, "div"))
	div.SetAttribute("id", "content")
	p := div.AppendChild(dom.NewElementNode(doc, "p"))
	p.SetAttribute("class", "a b")
	p.SetAttribute("name", "para")
	div.AppendChild(dom.NewElementNode(doc, "p"))

	rt, err := New(doc, storage.New(), nil)
	require.NoError(t, err)
	return rt, doc
}

func TestCollectionSurface(t *testing.T) {
	rt, _ := testPage(t)

	v, err := rt.Run(`document.getElementsByTagName("p").length`)
	require.NoError(t, err)
	require.Equal(t, int64(2), v.ToInteger())

	v, err = rt.Run(`document.getElementsByTagName("P").item(0).nodeName`)
	require.NoError(t, err)
	require.Equal(t, "p", v.String())

	v, err = rt.Run(`document.getElementsByClassName("a b").length`)
	require.NoError(t, err)
	require.Equal(t, int64(1), v.ToInteger())

	v, err = rt.Run(`document.getElementsByTagName("p").namedItem("para").getAttribute("name")`)
	require.NoError(t, err)
	require.Equal(t, "para", v.String())

	v, err = rt.Run(`document.getElementsByTagName("p").item(99)`)
	require.NoError(t, err)
	require.True(t, goja.IsNull(v), "out of range is null")

	v, err = rt.Run(`document.getElementsByTagName("p").namedItem("")`)
	require.NoError(t, err)
	require.True(t, goja.IsNull(v), "empty name is null")
}

func TestCollectionLiveAcrossGoMutation(t *testing.T) {
	rt, doc := testPage(t)

	v, err := rt.Run(`var ps = document.getElementsByTagName("p"); ps.length`)
	require.NoError(t, err)
	require.Equal(t, int64(2), v.ToInteger())

	content := doc.GetElementByID("content")
	content.AppendChild(dom.NewElementNode(doc, "p"))

	// same collection object, no re-query
	v, err = rt.Run(`ps.length`)
	require.NoError(t, err)
	require.Equal(t, int64(3), v.ToInteger())
}

func TestScriptSideMutation(t *testing.T) {
	rt, _ := testPage(t)

	v, err := rt.Run(`
		var div = document.getElementById("content");
		var ps = div.getElementsByTagName("p");
		var before = ps.length;
		div.appendChild(document.createElement("p"));
		[before, ps.length].join(",");
	`)
	require.NoError(t, err)
	require.Equal(t, "2,3", v.String())
}

func TestNodeIdentityStableAcrossLookups(t *testing.T) {
	rt, _ := testPage(t)

	v, err := rt.Run(`
		document.getElementById("content") ===
			document.getElementsByTagName("div").item(0);
	`)
	require.NoError(t, err)
	require.True(t, v.ToBoolean())
}

func TestStorageSurface(t *testing.T) {
	rt, _ := testPage(t)

	v, err := rt.Run(`
		localStorage.setItem("a", "1");
		localStorage.setItem("b", "2");
		localStorage.setItem("a", "one");
		[localStorage.length, localStorage.key(0), localStorage.getItem("a")].join("|");
	`)
	require.NoError(t, err)
	require.Equal(t, "2|a|one", v.String())

	v, err = rt.Run(`localStorage.getItem("missing")`)
	require.NoError(t, err)
	require.Equal(t, "null", v.String())

	v, err = rt.Run(`
		sessionStorage.setItem("a", "session");
		localStorage.getItem("a") + "/" + sessionStorage.getItem("a");
	`)
	require.NoError(t, err)
	require.Equal(t, "one/session", v.String())

	_, err = rt.Run(`localStorage.removeItem("a"); localStorage.clear();`)
	require.NoError(t, err)
	v, err = rt.Run(`localStorage.length`)
	require.NoError(t, err)
	require.Equal(t, int64(0), v.ToInteger())
}

func TestStorageQuotaThrows(t *testing.T) {
	doc := dom.NewDocumentNode("https://example.com")
	doc.AppendChild(dom.NewElementNode(doc, "html"))
	rt, err := New(doc, storage.NewWithQuota(8), nil)
	require.NoError(t, err)

	v, err := rt.Run(`
		var thrown = false;
		localStorage.setItem("k", "v");
		try {
			localStorage.setItem("big", "0123456789");
		} catch (e) {
			thrown = true;
		}
		thrown + "/" + localStorage.length;
	`)
	require.NoError(t, err)
	require.Equal(t, "true/1", v.String())
}

func TestWindowGlobals(t *testing.T) {
	rt, _ := testPage(t)

	v, err := rt.Run(`window.document === document && window.localStorage === localStorage && self === window`)
	require.NoError(t, err)
	require.True(t, v.ToBoolean())
}

func TestRuntimeRequiresDocument(t *testing.T) {
	_, err := New(nil, storage.New(), nil)
	require.Error(t, err)

	doc := dom.NewDocumentNode("https://example.com")
	elem := dom.NewElementNode(doc, "div")
	_, err = New(elem, storage.New(), nil)
	require.Error(t, err)
}
