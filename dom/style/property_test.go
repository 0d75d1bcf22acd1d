package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestPropertyLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.dom")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	for i := 0; i < PropertyCount; i++ {
		id := PropertyID(i)
		back, ok := PropertyByName(id.String())
		if !ok || back != id {
			t.Errorf("expected property %q to map back to %d, is %d", id, id, back)
		}
	}
	id, ok := PropertyByName("Margin-Top")
	assert.True(t, ok)
	assert.Equal(t, PropMarginTop, id)
	assert.Equal(t, PGMargins, id.Group())
	assert.Equal(t, PGX, GroupNameFromPropertyKey("funny-margin"))
	_, ok = PropertyByName("margin")
	assert.False(t, ok, "shorthands are not longhand properties")
}

func TestInheritedProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.dom")
	defer teardown()
	//
	for _, id := range []PropertyID{PropColor, PropFontFamily, PropQuotes, PropVisibility, PropBorderSpacing} {
		assert.True(t, id.IsInherited(), "%s should be inherited", id)
	}
	for _, id := range []PropertyID{PropMarginTop, PropDisplay, PropBackgroundColor, PropCounterReset} {
		assert.False(t, id.IsInherited(), "%s should not be inherited", id)
	}
	assert.False(t, PropertyID(PropertyCount).IsInherited())
}

func TestKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.dom")
	defer teardown()
	//
	k, ok := KeywordFromString("inline-block")
	assert.True(t, ok)
	assert.Equal(t, KeywordInlineBlock, k)
	assert.Equal(t, "inline-block", k.String())
	n, ok := PropDisplay.KeywordIndex(KeywordInlineBlock)
	assert.True(t, ok)
	assert.Equal(t, KeywordInlineBlock, PropDisplay.Keywords()[n])
	_, ok = PropMarginTop.KeywordIndex(KeywordInlineBlock)
	assert.False(t, ok)
	assert.Len(t, Properties(PGPadding), 4)
}

func TestColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.dom")
	defer teardown()
	//
	red, ok := NamedColor("red")
	assert.True(t, ok)
	assert.Equal(t, RGBA(0xff, 0, 0, 0xff), red)
	assert.Equal(t, "red", red.String())
	aqua, _ := NamedColor("cyan")
	assert.Equal(t, "aqua", ColorString(aqua))
	assert.Equal(t, "#123456", RGBA(0x12, 0x34, 0x56, 0xff).String())
	assert.Equal(t, "transparent", Transparent.String())
	r, g, b, a := red.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g+b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestHints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.dom")
	defer teardown()
	//
	div := &html.Node{Type: html.ElementNode, Data: "div"}
	assert.Equal(t, KeywordBlock, DisplayForHTMLNode(div))
	b := &html.Node{Type: html.ElementNode, Data: "b"}
	hints := HintsForHTMLNode(b)
	assert.Contains(t, hints, Hint{PropDisplay, KeywordInline})
	assert.Contains(t, hints, Hint{PropFontWeight, KeywordBold})
	text := &html.Node{Type: html.TextNode, Data: "hello"}
	assert.Nil(t, HintsForHTMLNode(text))
}
