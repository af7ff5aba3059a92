package udt

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/udt/dom"
	"github.com/npillmayer/udt/dom/domdbg"
	"github.com/npillmayer/udt/dom/style/cssom"
	"github.com/npillmayer/udt/expr"
	"github.com/npillmayer/udt/lexer"
	"github.com/npillmayer/udt/markup"
	"github.com/npillmayer/udt/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	src := `<udt><template name="item"><argument name="label" default="x"/>` +
		`<node>${label}</node></template><node><item label="hi"/></node></udt>`
	doc, err := New(DefaultOptions()).Compile(src, "e2e.udt")
	require.NoError(t, err)
	require.NotNil(t, doc.Root)
	children := doc.Root.ChildNodes()
	require.Len(t, children, 1)
	assert.Equal(t, expr.Str("hi"), children[0].Value)
	t.Logf("\n%s", domdbg.Print(doc.Root))
}

func TestLiteralSetsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	src := `<node id="root" class="a b c" tags="t1 t2">
		<text id="x" class="b" tags="only"/>
		<image id="y"/>
	</node>`
	doc, err := New(DefaultOptions()).Compile(src, "sets.udt")
	require.NoError(t, err)
	assert.Equal(t, "root", doc.Root.ID)
	assert.Equal(t, []string{"a", "b", "c"}, doc.Root.Classes)
	assert.Equal(t, []string{"t1", "t2"}, doc.Root.Tags)
	x := doc.Lookup("x")
	require.NotNil(t, x)
	assert.Equal(t, []string{"b"}, x.Classes)
	assert.Equal(t, []string{"only"}, x.Tags)
	y := doc.Lookup("y")
	require.NotNil(t, y)
	assert.Empty(t, y.Classes)
	assert.Empty(t, y.Tags)
	assert.True(t, doc.StyleSheet.Empty())
}

func TestDocumentQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	doc, err := New(DefaultOptions()).Compile(`<node id="r" class="panel" tags="root">
		<text id="t" class="panel label"/>
		<node id="n" tags="root"/>
	</node>`, "queries.udt")
	require.NoError(t, err)
	ids := func(nodes []*dom.Node) (s []string) {
		for _, n := range nodes {
			s = append(s, n.ID)
		}
		return
	}
	assert.Equal(t, []string{"r", "t"}, ids(doc.WithClass("panel")))
	assert.Equal(t, []string{"t"}, ids(doc.WithClass("label")))
	assert.Equal(t, []string{"r", "n"}, ids(doc.WithTag("root")))
	assert.Empty(t, doc.WithTag("none"))
	var empty *Document
	assert.Nil(t, empty.WithClass("panel"))
}

func TestCascadePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	src := `<udt>
	<style>
		.box { color: red; }
		.box { color: blue; }
	</style>
	<node>
		<node id="plain" class="box"/>
		<node id="inline" class="box" style="color: green;"/>
	</node>
	</udt>`
	doc, err := New(DefaultOptions()).Compile(src, "cascade.udt")
	require.NoError(t, err)
	c, _ := doc.Lookup("plain").Style.Color.Get()
	assert.Equal(t, "blue", c.String())
	c, _ = doc.Lookup("inline").Style.Color.Get()
	assert.Equal(t, "green", c.String())
}

func TestImports(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	c := New(DefaultOptions())
	c.Stylesheets.Register("theme", `.box { color: red; opacity: 0.5; } text { color: lime; }`)
	c.Stylesheets.Register("plain.css", `.box { padding: 2px 4px; background-color: #0000ff; }`)
	src := `<udt>
	<style>
		@import "theme";
		@import "plain.css";
		.box { color: blue; }
	</style>
	<node id="b" class="box"/>
	</udt>`
	doc, err := c.Compile(src, "imports.udt")
	require.NoError(t, err)
	st := doc.Root.Style
	col, _ := st.Color.Get()
	assert.Equal(t, "blue", col.String(), "rules of the importing sheet follow imported rules")
	o, _ := st.Opacity.Get()
	assert.Equal(t, 0.5, o)
	p, _ := st.Padding.Get()
	assert.Equal(t, float32(2), p.Top)
	assert.Equal(t, float32(4), p.Right)
	bg, _ := st.BackgroundColor.Get()
	assert.Equal(t, "blue", bg.String())
	//
	_, err = c.Compile(`<udt><style>@import "nope";</style><node/></udt>`, "bad.udt")
	assert.ErrorIs(t, err, cssom.ErrUnknownStylesheet)
}

// Run with -race: compiles share the compiler's registries.
func TestConcurrentCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	c := New(DefaultOptions())
	c.Stylesheets.Register("base", `@import "colors.css"; .box { opacity: 0.5; }`)
	c.Stylesheets.Register("colors.css", `.box { color: #ff0000; }`)
	c.Stylesheets.Register("loop", `@import "loop";`)
	require.NoError(t, c.DeclareTemplates(`<template name="cell"><argument name="n"/>`+
		`<node id="cell-${n}" class="box"/></template>`, "lib.udt"))
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 8; j++ {
				src := fmt.Sprintf(`<udt><style>@import "base";</style><node><cell n=%d/></node></udt>`, i)
				doc, err := c.Compile(src, "concurrent.udt")
				if err != nil {
					errs <- err
					return
				}
				n := doc.Lookup(fmt.Sprintf("cell-%d", i))
				if n == nil {
					errs <- fmt.Errorf("cell-%d missing", i)
					return
				}
				if col, _ := n.Style.Color.Get(); col.String() != "red" {
					errs <- fmt.Errorf("cell-%d: expected color red, have %s", i, col)
					return
				}
				if _, err = c.Compile(`<udt><style>@import "loop";</style><node/></udt>`, "loop.udt"); !errors.Is(err, cssom.ErrImportCycle) {
					errs <- fmt.Errorf("expected import cycle, have %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestSharedTemplates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	c := New(DefaultOptions())
	require.NoError(t, c.DeclareTemplates(`
	<template name="row">
		<argument name="key"/>
		<node id="${key}-row" flow="row"><slot/></node>
	</template>`, "lib.udt"))
	assert.Error(t, c.DeclareTemplates(`<node/>`, "notalib.udt"))
	doc, err := c.Compile(`<udt>
	<template name="cell"><argument name="v"/><text>${v}</text></template>
	<node>
		<row key="a"><cell v="1"/><cell v="2"/></row>
		<row key="b"/>
	</node>
	</udt>`, "doc.udt")
	require.Error(t, err, "flow is a style property, not an attribute")
	assert.ErrorIs(t, err, dom.ErrInvalidAttribute)
	//
	c = New(DefaultOptions())
	require.NoError(t, c.DeclareTemplates(`<template name="row"><argument name="key"/>`+
		`<node id="${key}-row" style="flow: row"><slot/></node></template>`, "lib.udt"))
	doc, err = c.Compile(`<udt>
	<template name="cell"><argument name="v"/><text>${v}</text></template>
	<node>
		<row key="a"><cell v="1"/><cell v="2"/></row>
		<row key="b"/>
	</node>
	</udt>`, "doc.udt")
	require.NoError(t, err)
	a := doc.Lookup("a-row")
	require.NotNil(t, a)
	require.Len(t, a.ChildNodes(), 2)
	assert.Equal(t, expr.Str("2"), a.ChildNodes()[1].Value)
	assert.NotNil(t, doc.Lookup("b-row"))
	_, shared := c.Templates.Lookup("cell")
	assert.False(t, shared, "document templates stay in the document")
}

func TestCompileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	cases := []struct {
		name string
		src  string
		cat  lexer.Category
		is   error
	}{
		{"lex", `<node a=§/>`, lexer.LexError, nil},
		{"mismatched close", `<node></text>`, lexer.SyntaxError, nil},
		{"two roots", `<node/><node/>`, lexer.SemanticError, markup.ErrDuplicateRoot},
		{"unknown element", `<frame/>`, lexer.SemanticError, nil},
		{"missing argument", `<udt><template name="t"><argument name="count"/><node/></template><t/></udt>`,
			lexer.SemanticError, template.ErrArgumentNotDefined},
		{"fixed id", `<udt><template name="t"><node id="x"/></template><node/></udt>`,
			lexer.SemanticError, template.ErrFixedID},
		{"cycle", `<udt><template name="t"><node><t/></node></template><t/></udt>`,
			lexer.SemanticError, template.ErrCycle},
		{"bad property", `<udt><style>.a { colour: red; }</style><node/></udt>`, lexer.SemanticError, nil},
		{"bad value count", `<udt><style>.a { border-color: red green blue; }</style><node/></udt>`,
			lexer.SemanticError, nil},
		{"bad type", `<text max-lines="many"/>`, lexer.TypeError, nil},
		{"unknown type in selector", `<udt><style>frame { color: red; }</style><node/></udt>`,
			lexer.SemanticError, nil},
	}
	c := New(DefaultOptions())
	for _, tc := range cases {
		_, err := c.Compile(tc.src, "err.udt")
		var lerr *lexer.Error
		if !errors.As(err, &lerr) {
			t.Errorf("%s: expected positioned error, got %v", tc.name, err)
			continue
		}
		assert.Equal(t, tc.cat, lerr.Category, tc.name+": "+err.Error())
		assert.Equal(t, "err.udt", lerr.File, tc.name)
		if tc.is != nil {
			assert.ErrorIs(t, err, tc.is, tc.name)
		}
	}
}

func TestFixedIDRejectedBeforeExpansion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	// the template is never referenced
	_, err := New(DefaultOptions()).Compile(
		`<udt><template name="t"><node><text id="fixed"/></node></template><node/></udt>`, "fixed.udt")
	assert.ErrorIs(t, err, template.ErrFixedID)
}

func TestEmptyDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	doc, err := New(DefaultOptions()).Compile(`<!-- nothing here -->`, "empty.udt")
	require.NoError(t, err)
	assert.Nil(t, doc.Root)
	assert.Nil(t, doc.Lookup("x"))
}

func TestOptionsFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.compiler")
	defer teardown()
	//
	conf := testconfig.Conf{
		KeyDocumentTag:       "ui",
		KeyStyleTag:          "css",
		KeyMaxExpansionDepth: 1,
		KeyUniqueIDs:         false,
	}
	opts := OptionsFromConfig(conf)
	assert.Equal(t, "ui", opts.Tags.Document)
	assert.Equal(t, "css", opts.Tags.Style)
	assert.Equal(t, "template", opts.Tags.Template)
	assert.Equal(t, 1, opts.MaxExpansionDepth)
	assert.False(t, opts.UniqueIDs)
	//
	c := New(opts)
	doc, err := c.Compile(`<ui><css>.a { z-index: 4; }</css>`+
		`<node><text id="d" class="a"/><text id="d"/></node></ui>`, "conf.udt")
	require.NoError(t, err, "duplicate ids are allowed if configured")
	z, _ := doc.Lookup("d").Style.ZIndex.Get()
	assert.Equal(t, int64(4), z)
	_, err = c.Compile(`<ui><template name="a"><node><b/></node></template>`+
		`<template name="b"><node/></template><a/></ui>`, "depth.udt")
	assert.Error(t, err, "expansion depth is limited to 1")
	//
	assert.Equal(t, DefaultOptions(), OptionsFromConfig(testconfig.Conf{}))
}
