package markup_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/udt/expr"
	"github.com/npillmayer/udt/lexer"
	"github.com/npillmayer/udt/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElementTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.markup")
	defer teardown()
	//
	src := `<node id="main" class="a b">
	  <text wrap max-lines=3>Hello
	  World</text>
	  <image source="logo.png" tint=0xff0000ff/>
	</NODE>`
	doc, err := markup.ParseText(src, "test.udt", markup.DefaultTags)
	require.NoError(t, err)
	require.NotNil(t, doc.Root)
	root := doc.Root
	assert.Equal(t, "node", root.Name)
	assert.Len(t, root.Children, 2)
	assert.Equal(t, "main", root.Attr("ID").Text())
	txt := root.Children[0]
	assert.Equal(t, "Hello\n\t  World", txt.Text)
	assert.Equal(t, markup.AttrImplicit, txt.Attr("wrap").Kind)
	assert.Equal(t, "true", txt.Attr("wrap").Text())
	ml, err := txt.Attr("max-lines").Value("test.udt")
	require.NoError(t, err)
	assert.Equal(t, expr.Int(3), ml)
	tint := root.Children[1].Attr("tint")
	assert.Equal(t, markup.AttrUint, tint.Kind)
	assert.Equal(t, 4, tint.Pos.Line)
}

func TestParseWrapperAndTemplates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.markup")
	defer teardown()
	//
	src := `<udt>
	<template name="item"><argument name="label" default="x"/><node>${label}</node></template>
	<style> .box { color: red; } </style>
	<node><item label="hi"/></node>
	</udt>`
	doc, err := markup.ParseText(src, "test.udt", markup.DefaultTags)
	require.NoError(t, err)
	require.Len(t, doc.Templates, 1)
	assert.Equal(t, "item", doc.Templates[0].Attr("name").Text())
	assert.True(t, doc.HasStyle)
	assert.NotEmpty(t, doc.Style)
	assert.Equal(t, lexer.Dot, doc.Style[0].Kind)
	require.NotNil(t, doc.Root)
	assert.Equal(t, "item", doc.Root.Children[0].Name)
	body := doc.Templates[0].Children[1]
	assert.Equal(t, "${label}", body.Text)
}

func TestParseAttributeKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.markup")
	defer teardown()
	//
	src := `<scroll a="s" b=ident c=-4 d=0x10 e=2.5 f=false g={[1, 2]} h=${arg} i/>`
	doc, err := markup.ParseText(src, "test.udt", markup.DefaultTags)
	require.NoError(t, err)
	kinds := map[string]markup.AttrKind{
		"a": markup.AttrString, "b": markup.AttrIdent, "c": markup.AttrInt,
		"d": markup.AttrUint, "e": markup.AttrFloat, "f": markup.AttrBool,
		"g": markup.AttrExpr, "h": markup.AttrPlaceholder, "i": markup.AttrImplicit,
	}
	for name, k := range kinds {
		a := doc.Root.Attr(name)
		if assert.NotNil(t, a, name) {
			assert.Equal(t, k, a.Kind, name)
		}
	}
	g, err := doc.Root.Attr("g").Value("test.udt")
	require.NoError(t, err)
	assert.Equal(t, expr.Array(expr.Int(1), expr.Int(2)), g)
	_, err = doc.Root.Attr("h").Value("test.udt")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.markup")
	defer teardown()
	//
	cases := []struct {
		src string
		cat lexer.Category
		is  error
	}{
		{`<node></text>`, lexer.SyntaxError, nil},
		{`<node>`, lexer.SyntaxError, nil},
		{`<node/><node/>`, lexer.SemanticError, markup.ErrDuplicateRoot},
		{`<style></style><style></style><node/>`, lexer.SemanticError, markup.ErrDuplicateStyle},
		{`<node a=1 a=2/>`, lexer.SemanticError, nil},
		{`</node>`, lexer.SyntaxError, nil},
		{`hello`, lexer.SyntaxError, nil},
		{`<node a=/>`, lexer.SyntaxError, nil},
	}
	for _, c := range cases {
		_, err := markup.ParseText(c.src, "test.udt", markup.DefaultTags)
		var lerr *lexer.Error
		if !errors.As(err, &lerr) {
			t.Errorf("%s: expected positioned error, got %v", c.src, err)
			continue
		}
		assert.Equal(t, c.cat, lerr.Category, c.src)
		if c.is != nil {
			assert.ErrorIs(t, err, c.is, c.src)
		}
		t.Logf("%s: %v", c.src, err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.markup")
	defer teardown()
	//
	doc, err := markup.ParseText(`<node id="x"><text/></node>`, "test.udt", markup.DefaultTags)
	require.NoError(t, err)
	c := doc.Root.Clone()
	c.Attrs[0].Raw = "y"
	c.Children[0].Name = "image"
	assert.Equal(t, "x", doc.Root.Attr("id").Raw)
	assert.Equal(t, "text", doc.Root.Children[0].Name)
}
