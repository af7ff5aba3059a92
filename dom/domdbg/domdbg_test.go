package domdbg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/udt/dom"
	"github.com/npillmayer/udt/dom/domdbg"
	"github.com/npillmayer/udt/dom/style/css"
	"github.com/npillmayer/udt/dom/style/cssom"
	"github.com/npillmayer/udt/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compiled(t *testing.T) *dom.Node {
	doc, err := markup.ParseText(`<node id="r"><text class="t">Hello World</text><node><image/></node></node>`,
		"test.udt", markup.DefaultTags)
	require.NoError(t, err)
	types := dom.DefaultRegistry()
	root, err := dom.Build(doc.Root, types, true)
	require.NoError(t, err)
	sheet, err := cssom.ParseText(`.t { color: red; }`, "test.css", nil)
	require.NoError(t, err)
	require.NoError(t, css.Resolve(root, sheet, types))
	return root
}

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.dom")
	defer teardown()
	//
	out := domdbg.Print(compiled(t))
	t.Logf("\n%s", out)
	assert.True(t, strings.HasPrefix(out, "node#r"))
	assert.Contains(t, out, `text.t = "Hello World"`)
	assert.Contains(t, out, "image")
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.dom")
	defer teardown()
	//
	var b bytes.Buffer
	require.NoError(t, domdbg.ToGraphViz(compiled(t), &b, []string{"color"}))
	dot := b.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "node00003 -> node00004")
	assert.Contains(t, dot, "<td>red</td>")
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}
