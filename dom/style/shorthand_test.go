package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandFourSides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.dom")
	defer teardown()
	//
	table := []struct {
		in  []string
		out [4]string
	}{
		{[]string{"1"}, [4]string{"1", "1", "1", "1"}},
		{[]string{"1", "2"}, [4]string{"1", "2", "1", "2"}},
		{[]string{"1", "2", "3"}, [4]string{"1", "2", "3", "2"}},
		{[]string{"1", "2", "3", "4"}, [4]string{"1", "2", "3", "4"}},
	}
	for _, x := range table {
		sides, err := ExpandFourSides(x.in)
		require.NoError(t, err)
		assert.Equal(t, x.out, sides, "expansion of %v", x.in)
	}
	_, err := ExpandFourSides([]string{})
	assert.Error(t, err)
	_, err = ExpandFourSides([]int{1, 2, 3, 4, 5})
	assert.Error(t, err)
}

func TestShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.dom")
	defer teardown()
	//
	sh, ok := ShorthandByName("border")
	require.True(t, ok)
	assert.Equal(t, BorderAll, sh.Kind)
	assert.Len(t, sh.Longhands, 12)
	sh, ok = ShorthandByName("border-left")
	require.True(t, ok)
	assert.Equal(t, []PropertyID{PropBorderLeftWidth, PropBorderLeftStyle, PropBorderLeftColor}, sh.Longhands)
	sh, _ = ShorthandByName("padding")
	assert.Equal(t, []PropertyID{PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft}, sh.Longhands)
}
