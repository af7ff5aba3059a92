package css_test

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/npillmayer/udt/css"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PX * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10px) to be a fixed value, isn't: %#v", ten)
	}
	if ten != css.Px(10) {
		t.Errorf("expected Px(10) to equal Just(10px)")
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.IsKind(css.Auto()):
		t.Errorf("expected percentage not to match auto")
	case m.Percentage(&p):
		t.Logf("percent = %s", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
	if r, ok := pcnt.Resolve(200 * dimen.PX); !ok || r != 160*dimen.PX {
		t.Errorf("expected 80%% of 200px to be 160px, is %s", r)
	}
	if _, ok := auto.Resolve(200 * dimen.PX); ok {
		t.Errorf("expected auto not to resolve")
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PX * 10)
	var du dimen.DU
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}

	e := css.DimenPattern[dimen.DU](ten)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PX {
		t.Errorf("expected distance to be %v, isn't: %#v", 20*dimen.PX, distance)
	}
	var unset css.DimenT
	if s := unset.String(); s != "unset" {
		t.Errorf("expected zero dimension to be unset, is %s", s)
	}
}

func TestDimenString(t *testing.T) {
	for _, tc := range []struct {
		d    css.DimenT
		want string
	}{
		{css.Px(20), "20px"},
		{css.Px(1.5), "1.5px"},
		{css.JustDimen(dimen.IN), "72px"},
		{css.Percentage(percent.FromInt(50)), "50%"},
		{css.Auto(), "auto"},
	} {
		if s := tc.d.String(); s != tc.want {
			t.Errorf("expected %q, have %q", tc.want, s)
		}
	}
}
