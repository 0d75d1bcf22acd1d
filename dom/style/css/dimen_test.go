package css_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/computed"
	"github.com/npillmayer/csscascade/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
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
	case m.Percentage(&p):
		t.Logf("percent = %s", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	// now use it
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

	d := css.JustDimen(dimen.PT * 10)
	// now use it
	e := css.DimenPattern[dimen.DU](d)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 10*dimen.PT, distance)
	}
}

func TestDimenFromLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.dom")
	defer teardown()
	//
	d, err := css.DimenFromLength(computed.Px(4))
	require.NoError(t, err)
	assert.Equal(t, css.JustDimen(3*dimen.PT), d, "4px = 3pt")
	d, err = css.DimenFromLength(computed.Length{Value: bytecode.FixedFromInt(1), Unit: bytecode.UnitIN})
	require.NoError(t, err)
	assert.Equal(t, css.JustDimen(72*dimen.PT), d)
	d, err = css.DimenFromLength(computed.Percent(50))
	require.NoError(t, err)
	assert.Equal(t, css.Percentage(percent.FromInt(50)), d)
	d, err = css.DimenFromLength(computed.Keyword(style.KeywordAuto))
	require.NoError(t, err)
	assert.Equal(t, css.Auto(), d)
	d, err = css.DimenFromLength(computed.Keyword(style.KeywordThin))
	require.NoError(t, err)
	assert.True(t, d.IsAbsolute())
	_, err = css.DimenFromLength(computed.Length{Value: bytecode.FixedFromInt(2), Unit: bytecode.UnitEM})
	assert.True(t, errors.Is(err, css.ErrRelativeLength))
	_, err = css.DimenFromLength(computed.Keyword(style.KeywordBlock))
	assert.Error(t, err)
	d, err = css.DimenFromLength(nil)
	require.NoError(t, err)
	assert.True(t, d.IsNone())
}
