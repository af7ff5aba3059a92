package style

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/npillmayer/udt/binding"
	"github.com/npillmayer/udt/css"
	"github.com/npillmayer/udt/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	for _, c := range []struct {
		in  string
		out Color
	}{
		{"red", Color{0xff, 0, 0, 0xff}},
		{"RED", Color{0xff, 0, 0, 0xff}},
		{"#f00", Color{0xff, 0, 0, 0xff}},
		{"#f008", Color{0xff, 0, 0, 0x88}},
		{"#00ff00", Color{0, 0xff, 0, 0xff}},
		{"#0000ff80", Color{0, 0, 0xff, 0x80}},
	} {
		col, err := ParseColor(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.out, col, c.in)
	}
	for _, bad := range []string{"#12", "#gggggg", "reddish"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
	col, err := ColorFromValue(expr.Uint(0x11223344))
	require.NoError(t, err)
	assert.Equal(t, Color{0x11, 0x22, 0x33, 0x44}, col)
	assert.Equal(t, uint32(0x11223344), col.Uint())
}

func TestDistribute4(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	q, err := Distribute4([]int{1})
	require.NoError(t, err)
	assert.Equal(t, Quad[int]{1, 1, 1, 1}, q)
	q, err = Distribute4([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, Quad[int]{1, 2, 1, 2}, q)
	q, err = Distribute4([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, Quad[int]{1, 2, 3, 4}, q)
	_, err = Distribute4([]int{1, 2, 3})
	assert.ErrorIs(t, err, ErrValueCount)
	_, err = Distribute4([]int{})
	assert.ErrorIs(t, err, ErrValueCount)
	_, err = RadiiFrom([]float32{1, 2, 3})
	assert.ErrorIs(t, err, ErrValueCount)
	_, err = Vec2FromValue(expr.Array(expr.Int(1), expr.Int(2), expr.Int(3)))
	assert.ErrorIs(t, err, ErrValueCount)
	_, err = SizeFromValue(expr.Str("1 2 3"))
	assert.ErrorIs(t, err, ErrValueCount)
	_, err = InsetsFromValue(expr.Array(expr.Str("x")))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrValueCount, "a malformed number is not a count error")
}

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	for _, c := range []struct {
		in   string
		want css.DimenT
	}{
		{"auto", css.Auto()},
		{" AUTO ", css.Auto()},
		{"12", css.JustDimen(12 * dimen.PX)},
		{"2.5", css.Px(2.5)},
		{"10px", css.JustDimen(10 * dimen.PX)},
		{"12pt", css.JustDimen(12 * dimen.PT)},
		{"3mm", css.JustDimen(3 * dimen.MM)},
		{"1in", css.Px(72)},
		{"50%", css.Percentage(percent.FromInt(50))},
	} {
		d, err := ParseDimen(c.in)
		if assert.NoError(t, err, c.in) {
			assert.Equal(t, c.want, d, c.in)
		}
	}
	for _, in := range []string{"", "px", "1.5px", "10furlong", "101%", "-1%", "big"} {
		_, err := ParseDimen(in)
		assert.Error(t, err, in)
	}
}

func TestStyleBinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	s := &Style{}
	require.NoError(t, Properties.Bind(s, "backgroundColor", expr.Str("#fff")))
	require.NoError(t, Properties.Bind(s, "size", expr.Str("50% auto")))
	require.NoError(t, Properties.Bind(s, "padding", expr.Array(expr.Int(1), expr.Int(2))))
	require.NoError(t, Properties.Bind(s, "Z-INDEX", expr.Int(3)))
	bg, _ := s.BackgroundColor.Get()
	assert.Equal(t, "white", bg.String())
	sz, _ := s.Size.Get()
	assert.Equal(t, css.Percentage(percent.FromInt(50)), sz.W)
	assert.Equal(t, css.Auto(), sz.H)
	pad, _ := s.Padding.Get()
	assert.Equal(t, Insets{1, 2, 1, 2}, pad)
	err := Properties.Bind(s, "font-family", expr.Str("x"))
	assert.True(t, errors.Is(err, binding.ErrNoSuchProperty))
	t.Logf("style = %s", s)
}

func TestStyleMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "udt.style")
	defer teardown()
	//
	a := &Style{}
	require.NoError(t, a.Set("color", Color{R: 1, A: 0xff}))
	require.NoError(t, a.Set("opacity", 0.5))
	b := &Style{}
	require.NoError(t, b.Set("color", Color{B: 2, A: 0xff}))
	m := Default().Merge(a).Merge(b)
	c, _ := m.Color.Get()
	assert.Equal(t, Color{B: 2, A: 0xff}, c, "later style must win")
	o, _ := m.Opacity.Get()
	assert.Equal(t, 0.5, o, "unset properties must not override")
	v, ok := m.Get("visible")
	assert.True(t, ok)
	assert.Equal(t, true, v)
	_, ok = a.Get("grow")
	assert.False(t, ok)
	assert.True(t, (&Style{}).IsEmpty())
	assert.Error(t, a.Set("opacity", "high"))
}
