package cascade

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/computed"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineColorIsInherited(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	s := newSheet()
	inline := s.decl(t, OriginAuthor, InlineSpecificity, "color", "purple")
	sheetRule := s.decl(t, OriginAuthor, MakeSpecificity(1, 0, 0), "color", "olive")
	parent := cascadeAndResolve(t, s, nil, inline, sheetRule)
	assert.Equal(t, namedColor(t, "purple"), parent.TextColor())
	child := cascadeAndResolve(t, s, parent)
	assert.Equal(t, namedColor(t, "purple"), child.TextColor())
	assert.Equal(t, computed.SourceInherited, child.Slot(style.PropColor).Source)
}

func TestInheritOnRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	s := newSheet()
	root := cascadeAndResolve(t, s, nil,
		s.author(t, "color", "inherit !important"),
		s.author(t, "margin-top", "inherit"))
	assert.Equal(t, namedColor(t, "black"), root.TextColor())
	assert.Equal(t, computed.SourceInitial, root.Slot(style.PropColor).Source)
	assert.Equal(t, computed.Px(0), root.Margin(computed.Top))
}

func TestInheritanceClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	s := newSheet()
	styles := []*computed.Style{cascadeAndResolve(t, s, nil,
		s.author(t, "color", "teal"),
		s.author(t, "font-family", `"Gill Sans", sans-serif`),
		s.author(t, "margin", "5px"))}
	for depth := 1; depth <= 4; depth++ {
		var decls []Declaration
		if depth == 3 {
			decls = append(decls, s.author(t, "font-family", "monospace"))
		}
		styles = append(styles, cascadeAndResolve(t, s, styles[depth-1], decls...))
	}
	for depth, st := range styles {
		assert.Equal(t, namedColor(t, "teal"), st.TextColor(), "depth %d", depth)
		assert.True(t, st.IsFinal())
		if depth == 0 {
			assert.Equal(t, computed.Px(5), st.Margin(computed.Left))
			continue
		}
		assert.Equal(t, computed.Px(0), st.Margin(computed.Left), "margins are not inherited")
		if depth < 3 {
			assert.Equal(t, []string{"Gill Sans", "sans-serif"}, st.FontFamily(), "depth %d", depth)
		} else {
			assert.Equal(t, []string{"monospace"}, st.FontFamily(), "depth %d", depth)
		}
	}
}

func TestGenericKeywordResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	s := newSheet()
	parent := cascadeAndResolve(t, s, nil,
		s.author(t, "color", "purple"),
		s.author(t, "margin-top", "5px"),
		s.author(t, "display", "block"))
	tests := []struct {
		prop, value string
		check       func(*computed.Style) bool
	}{
		{"color", "unset", func(c *computed.Style) bool { return c.TextColor() == namedColor(t, "purple") }},
		{"color", "initial", func(c *computed.Style) bool { return c.TextColor() == namedColor(t, "black") }},
		{"color", "revert", func(c *computed.Style) bool { return c.TextColor() == namedColor(t, "black") }},
		{"color", "currentcolor", func(c *computed.Style) bool { return c.TextColor() == namedColor(t, "purple") }},
		{"margin-top", "unset", func(c *computed.Style) bool { return computed.Equal(c.Margin(computed.Top), computed.Px(0)) }},
		{"margin-top", "inherit", func(c *computed.Style) bool { return computed.Equal(c.Margin(computed.Top), computed.Px(5)) }},
		{"margin-top", "initial", func(c *computed.Style) bool { return computed.Equal(c.Margin(computed.Top), computed.Px(0)) }},
		{"display", "inherit", func(c *computed.Style) bool { return c.Display() == style.KeywordBlock }},
		{"display", "revert", func(c *computed.Style) bool { return c.Display() == style.KeywordInline }},
		{"margin", "inherit", func(c *computed.Style) bool { return computed.Equal(c.Margin(computed.Top), computed.Px(5)) }},
	}
	for _, test := range tests {
		child := cascadeAndResolve(t, s, parent, s.author(t, test.prop, test.value))
		assert.True(t, test.check(child), "%s: %s resolved to %s", test.prop, test.value,
			computed.Dump(child))
	}
}

func TestResolveKeepsCascadedStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	s := newSheet()
	env := s.env(t)
	cascaded, err := Cascade([]Declaration{s.author(t, "color", "inherit")}, nil, env)
	require.NoError(t, err)
	before := cascaded.Clone()
	_, err = Resolve(nil, cascaded, env.Defaults)
	require.NoError(t, err)
	assert.True(t, before.Equal(cascaded))
	assert.True(t, cascaded.Slot(style.PropColor).IsDeferred())
	//
	// a parent which is not final does not pass on its slots
	final, err := Resolve(computed.New(), cascaded, env.Defaults)
	require.NoError(t, err)
	assert.Equal(t, namedColor(t, "black"), final.TextColor())
}

type brokenDefaults struct{}

func (brokenDefaults) DefaultForProperty(id style.PropertyID) (computed.Value, error) {
	if id == style.PropQuotes {
		return nil, fmt.Errorf("%w: no quotes configured", ErrMissingDefault)
	}
	return computed.Px(1), nil
}

func TestMissingDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	_, err := Resolve(nil, computed.New(), nil)
	assert.True(t, errors.Is(err, ErrMissingDefault), "no provider")
	_, err = Resolve(nil, computed.New(), brokenDefaults{})
	assert.True(t, errors.Is(err, ErrMissingDefault), "invalid value from provider")
	//
	// with a parent, inherited properties do not need defaults
	s := newSheet()
	parent := cascadeAndResolve(t, s, nil)
	final, err := Resolve(parent, computed.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, parent.Quotes(), final.Quotes())
}

func TestConfiguredDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	conf := testconfig.Conf{
		"css.default.color":       "#333",
		"css.default.font-family": "Helvetica, sans-serif",
		"css.default.quotes":      `"«" "»"`,
	}
	ua, err := NewUADefaults(conf)
	require.NoError(t, err)
	final, err := Resolve(nil, computed.New(), ua)
	require.NoError(t, err)
	assert.Equal(t, style.RGBA(0x33, 0x33, 0x33, 0xff), final.TextColor())
	assert.Equal(t, []string{"Helvetica", "sans-serif"}, final.FontFamily())
	assert.Equal(t, []string{"«", "»"}, final.Quotes())
	//
	_, err = NewUADefaults(testconfig.Conf{"css.default.color": "12px"})
	assert.Error(t, err)
	_, err = NewUADefaults(testconfig.Conf{"css.default.color": "inherit"})
	assert.Error(t, err)
	v, err := ParseValue(style.PropMarginTop, "-3px")
	require.NoError(t, err)
	assert.Equal(t, computed.Px(-3), v)
}
