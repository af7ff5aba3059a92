package cssom

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/npillmayer/udt/css"
	"github.com/npillmayer/udt/dom/style"
	"github.com/npillmayer/udt/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectorsOf(sheet *StyleSheet) []string {
	var sels []string
	for _, r := range sheet.Rules() {
		sels = append(sels, r.Selector)
	}
	return sels
}

func TestParseNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	sheet, err := ParseText(`
	.box {
		color: red;
		&:hover { color: blue; }
		text, image { opacity: 0.5 }
		& .inner { grow: 2; }
	}
	#main.wide text:big { z-index: -1; }
	`, "test.style", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		".box", ".box:hover", ".box text", ".box image", ".box .inner", "#main.wide text:big",
	}, selectorsOf(sheet))
	t.Logf("\n%s", sheet)
	rules := sheet.Rules()
	c, _ := rules[0].Style.Color.Get()
	assert.Equal(t, "red", c.String())
	assert.Same(t, rules[2].Style, rules[3].Style, "selector list shares one style")
	z, _ := rules[5].Style.ZIndex.Get()
	assert.Equal(t, int64(-1), z)
}

func TestParseValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	sheet, err := ParseText(`n {
		size: 50% auto;
		min-size: 10;
		max-size: 1in 200px;
		border-color: red blue;
		padding: 1 2 3 4;
		corner-radius: 4;
		offset: 3 -4;
		anchor: bottom-right;
		flow: row-reverse;
		gradient: vertical "#000" white;
		background-color: 0x00ff00ff;
		visible: false;
	}`, "test.style", nil)
	require.NoError(t, err)
	st := sheet.Rules()[0].Style
	sz, _ := st.Size.Get()
	assert.Equal(t, style.Size{W: css.Percentage(percent.FromInt(50)), H: css.Auto()}, sz)
	minsz, _ := st.MinSize.Get()
	assert.Equal(t, style.Size{W: css.Px(10), H: css.Px(10)}, minsz)
	maxsz, _ := st.MaxSize.Get()
	assert.Equal(t, style.Size{W: css.JustDimen(dimen.IN), H: css.JustDimen(200 * dimen.PX)}, maxsz)
	bc, _ := st.BorderColor.Get()
	assert.Equal(t, "blue", bc.Left.String())
	pad, _ := st.Padding.Get()
	assert.Equal(t, style.Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}, pad)
	off, _ := st.Offset.Get()
	assert.Equal(t, style.Vec2{X: 3, Y: -4}, off)
	a, _ := st.Anchor.Get()
	assert.Equal(t, "bottom-right", a.String())
	f, _ := st.Flow.Get()
	assert.Equal(t, style.FlowRowReverse, f)
	g, _ := st.Gradient.Get()
	assert.Equal(t, style.Vertical, g.Orientation)
	bg, _ := st.BackgroundColor.Get()
	assert.Equal(t, "lime", bg.String())
	v, ok := st.Visible.Get()
	assert.True(t, ok)
	assert.False(t, v)
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	for _, c := range []struct {
		src string
		cat lexer.Category
		is  error
	}{
		{`n { border-color: red green blue; }`, lexer.SemanticError, style.ErrValueCount},
		{`n { padding: 1 2 3; }`, lexer.SemanticError, style.ErrValueCount},
		{`n { corner-radius: 1 2 3; }`, lexer.SemanticError, style.ErrValueCount},
		{`n { offset: 1 2 3; }`, lexer.SemanticError, style.ErrValueCount},
		{`n { size: 1 2 3; }`, lexer.SemanticError, style.ErrValueCount},
		{`n { anchor: 1; }`, lexer.SemanticError, style.ErrValueCount},
		{`n { color: red blue; }`, lexer.SemanticError, style.ErrValueCount},
		{`n { size: 10furlong; }`, lexer.TypeError, nil},
		{`n { size: 120%; }`, lexer.TypeError, nil},
		{`n { font-family: x; }`, lexer.SemanticError, nil},
		{`n { z-index: 1.5; }`, lexer.TypeError, nil},
		{`n { color: 1.5 }`, lexer.TypeError, nil},
		{`n { color: red; `, lexer.SyntaxError, nil},
		{`& n { color: red; }`, lexer.SyntaxError, nil},
		{`n . x { color: red; }`, lexer.SyntaxError, nil},
		{`@import "missing";`, lexer.SemanticError, ErrUnknownStylesheet},
		{`@include "x";`, lexer.SemanticError, nil},
	} {
		_, err := ParseText(c.src, "bad.style", NewRegistry())
		if !assert.Error(t, err, c.src) {
			continue
		}
		var lerr *lexer.Error
		if assert.True(t, errors.As(err, &lerr), c.src) {
			assert.Equal(t, c.cat, lerr.Category, "%s: %v", c.src, err)
		}
		if c.is != nil {
			assert.ErrorIs(t, err, c.is, c.src)
		}
		t.Logf("%v", err)
	}
}

func TestImport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	reg := NewRegistry()
	reg.Register("Base", `.box { color: red; }`)
	reg.Register("loop", `@import "loop";`)
	assert.True(t, reg.Exists("base"))
	sheet, err := ParseText(`.box { color: green; } @import "BASE";`, "doc", reg)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	c, _ := rules[1].Style.Color.Get()
	assert.Equal(t, "red", c.String(), "imported rules are appended")
	_, err = ParseText(`@import "loop";`, "doc", reg)
	assert.ErrorIs(t, err, ErrImportCycle)
	_, err = reg.Load("loop")
	assert.ErrorIs(t, err, ErrImportCycle)
	// importing the same stylesheet twice is not a cycle
	reg.Register("twice", `@import "base"; @import "base";`)
	sheet, err = reg.Load("twice")
	require.NoError(t, err)
	assert.Len(t, sheet.Rules(), 2)
	reg.Unregister("base")
	_, err = reg.Get("base")
	assert.True(t, errors.Is(err, ErrUnknownStylesheet))
}

func TestAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	a, _ := ParseText(`.a { grow: 1; }`, "a", nil)
	b, _ := ParseText(`.b { grow: 2; }`, "b", nil)
	a.AppendRules(b)
	assert.Equal(t, []string{".a", ".b"}, selectorsOf(a))
	assert.Same(t, b.Rules()[0], a.Rules()[1])
	assert.True(t, NewStyleSheet().Empty())
}

func TestFormatSuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	reg := NewRegistry()
	format := func(sel string) Format {
		return func(src, name string, ld *Loader) (*StyleSheet, error) {
			return NewStyleSheet(&Rule{Selector: sel, File: name}), nil
		}
	}
	reg.SetFormat(".css", format(".plain"))
	reg.SetFormat(".theme.css", format(".theme"))
	reg.SetFormat(".a.theme.css", format(".a"))
	reg.Register("dark.theme.css", "")
	reg.Register("reset.css", "")
	for i := 0; i < 20; i++ {
		sheet, err := reg.Load("Dark.Theme.CSS")
		require.NoError(t, err)
		assert.Equal(t, []string{".theme"}, selectorsOf(sheet), "longest suffix wins")
	}
	sheet, err := reg.Load("reset.css")
	require.NoError(t, err)
	assert.Equal(t, []string{".plain"}, selectorsOf(sheet))
	assert.Equal(t, []string{"dark.theme.css", "reset.css"}, reg.Names())
	var none *Registry
	assert.Nil(t, none.Names())
	assert.False(t, none.Exists("reset.css"))
}

func TestConcurrentImports(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	reg := NewRegistry()
	reg.Register("base", `.box { color: red; }`)
	reg.Register("theme", `@import "base"; .box { opacity: 0.5; }`)
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				sheet, err := ParseText(`@import "theme"; @import "base";`, fmt.Sprintf("doc%d", i), reg)
				if err == nil && len(sheet.Rules()) != 3 {
					err = fmt.Errorf("expected 3 rules, have %d", len(sheet.Rules()))
				}
				if err != nil {
					errs <- err
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
