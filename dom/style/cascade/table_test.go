package cascade

import (
	"errors"
	"testing"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/computed"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initialStyle returns a style with every property at its initial value.
func initialStyle(t *testing.T) *computed.Style {
	t.Helper()
	ua, err := NewUADefaults(nil)
	require.NoError(t, err)
	s, err := Resolve(nil, computed.New(), ua)
	require.NoError(t, err)
	require.True(t, s.IsFinal())
	return s
}

func TestOperationTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	for i := 0; i < style.PropertyCount; i++ {
		id := style.PropertyID(i)
		ops, err := Operations(id)
		require.NoError(t, err)
		assert.NotNil(t, ops.Cascade, "%s has no cascade operation", id)
		assert.NotNil(t, ops.Initial, id.String())
		assert.NotNil(t, ops.Copy, id.String())
		assert.NotNil(t, ops.Compose, id.String())
		assert.NotNil(t, ops.SetFromDefault, id.String())
		assert.Equal(t, id.IsInherited(), ops.Inherited, id.String())
	}
	_, err := Operations(style.PropertyID(style.PropertyCount))
	assert.True(t, errors.Is(err, ErrUnknownProperty))
}

func TestInitialValuesAreAccepted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	s := initialStyle(t)
	for i := 0; i < style.PropertyCount; i++ {
		id := style.PropertyID(i)
		sl := s.Slot(id)
		assert.Equal(t, computed.SourceInitial, sl.Source, id.String())
		assert.True(t, computed.Accepts(id, sl.Value), "initial value %v of %s", sl.Value, id)
	}
	assert.Equal(t, style.KeywordInline, s.Display())
	assert.Equal(t, []string{"serif"}, s.FontFamily())
	assert.Equal(t, []string{"“", "”", "‘", "’"}, s.Quotes())
}

func TestIdempotentCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	s := initialStyle(t)
	require.NoError(t, s.SetTextColor(style.RGBA(10, 20, 30, 255)))
	require.NoError(t, s.SetMargin(computed.Left, computed.Px(7)))
	s.Defer(style.PropWidth, bytecode.FlagValueUnset)
	before := s.Clone()
	for i := 0; i < style.PropertyCount; i++ {
		ops, _ := Operations(style.PropertyID(i))
		ops.Copy(s, s)
	}
	assert.True(t, before.Equal(s), "self-copy changed the style")
	//
	to := computed.New()
	for i := 0; i < style.PropertyCount; i++ {
		ops, _ := Operations(style.PropertyID(i))
		ops.Copy(s, to)
	}
	assert.True(t, to.Equal(s))
}

func TestComposeIsPure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	parent := initialStyle(t)
	purple, _ := style.NamedColor("purple")
	require.NoError(t, parent.SetTextColor(purple))
	child := computed.New()
	child.Defer(style.PropColor, bytecode.FlagValueInherit)
	child.Defer(style.PropMarginTop, bytecode.FlagValueUnset)
	require.NoError(t, child.SetPadding(computed.Top, computed.Px(2)))
	r1, r2 := computed.New(), computed.New()
	for i := 0; i < style.PropertyCount; i++ {
		ops, _ := Operations(style.PropertyID(i))
		ops.Compose(parent, child, r1)
		ops.Compose(parent, child, r2)
		ops.Compose(parent, child, r2)
	}
	assert.True(t, r1.Equal(r2), "compose is not a pure function of its inputs")
	assert.Equal(t, purple, r1.TextColor())
	assert.Equal(t, computed.SourceInherited, r1.Slot(style.PropColor).Source)
	assert.Equal(t, computed.Px(2), r1.Padding(computed.Top))
	assert.True(t, r1.Slot(style.PropMarginTop).IsDeferred(), "unset on margin is not composed from the parent")
	assert.Equal(t, parent.FontFamily(), r1.FontFamily(), "inherited properties without value take the parent's")
	assert.False(t, r1.Slot(style.PropDisplay).IsSet())
}

func TestSetFromDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	s := computed.New()
	ops, _ := Operations(style.PropDisplay)
	require.NoError(t, ops.SetFromDefault(computed.Keyword(style.KeywordBlock), s))
	assert.Equal(t, computed.SourceHint, s.Slot(style.PropDisplay).Source)
	err := ops.SetFromDefault(computed.Px(1), s)
	assert.True(t, errors.Is(err, computed.ErrInvalidValue))
}
