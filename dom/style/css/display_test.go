package css_test

import (
	"testing"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/computed"
	"github.com/npillmayer/csscascade/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayModes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.dom")
	defer teardown()
	//
	mode, err := css.DisplayFromKeyword(style.KeywordListItem)
	require.NoError(t, err)
	assert.True(t, mode.IsBlockLevel())
	assert.True(t, mode.Contains(css.ListItemMode))
	assert.Equal(t, "BlockMode ListItemMode", mode.FullString())
	mode, err = css.DisplayFromKeyword(style.KeywordInlineBlock)
	require.NoError(t, err)
	assert.Equal(t, css.InlineMode, mode.Outer())
	assert.Equal(t, css.InnerBlockMode, mode.Inner())
	assert.Equal(t, "▩", mode.Symbol())
	assert.Equal(t, "DisplayNone", css.DisplayNone.String())
	_, err = css.DisplayFromKeyword(style.KeywordBold)
	assert.Error(t, err)
	//
	s := computed.New()
	require.NoError(t, s.SetDisplay(style.KeywordFlex))
	assert.True(t, css.Display(s).Overlaps(css.FlexMode))
	assert.True(t, css.Display(s).IsBlockLevel())
}
