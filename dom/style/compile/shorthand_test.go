package compile

import (
	"testing"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pxOf(t *testing.T, instr bytecode.Instruction) int {
	t.Helper()
	require.Equal(t, bytecode.ValueLength, instr.OPV.Value())
	return bytecode.Fixed(instr.Operands[0]).Int()
}

func TestFourSidesExpansion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.compile")
	defer teardown()
	//
	table := []struct {
		value string
		sides [4]int // top, right, bottom, left
	}{
		{"1px", [4]int{1, 1, 1, 1}},
		{"1px 2px", [4]int{1, 2, 1, 2}},
		{"1px 2px 3px", [4]int{1, 2, 3, 2}},
		{"1px 2px 3px 4px", [4]int{1, 2, 3, 4}},
	}
	c := New(nil)
	longhands := []style.PropertyID{style.PropMarginTop, style.PropMarginRight,
		style.PropMarginBottom, style.PropMarginLeft}
	for _, x := range table {
		code := compileValue(t, c, "margin", x.value)
		require.Len(t, code, 4)
		for i, instr := range code {
			assert.Equal(t, opcode(longhands[i]), instr.OPV.Opcode(), "margin: %s", x.value)
			assert.Equal(t, x.sides[i], pxOf(t, instr), "margin: %s, side %d", x.value, i)
		}
	}
}

func TestShorthandGenericKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.compile")
	defer teardown()
	//
	c := New(nil)
	for _, sh := range []string{"margin", "padding", "border-style", "border-left", "border"} {
		for _, kw := range []string{"inherit", "initial", "revert", "unset"} {
			code := compileValue(t, c, sh, kw+" !important")
			shorthand, _ := style.ShorthandByName(sh)
			require.Len(t, code, len(shorthand.Longhands))
			fv := bytecode.FlagValueFromKeyword(kw)
			for i, instr := range code {
				assert.Equal(t, opcode(shorthand.Longhands[i]), instr.OPV.Opcode())
				assert.Equal(t, fv, instr.OPV.FlagValue(), "%s: %s", sh, kw)
				assert.True(t, instr.OPV.IsImportant())
				assert.Empty(t, instr.Operands)
			}
		}
	}
}

func TestBorderColorShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.compile")
	defer teardown()
	//
	c := New(nil)
	red, _ := style.NamedColor("red")
	green, _ := style.NamedColor("green")
	code := compileValue(t, c, "border-color", "green")
	require.Len(t, code, 4)
	for _, instr := range code {
		assert.Equal(t, uint32(green), instr.Operands[0])
	}
	code = compileValue(t, c, "border-color", "red green")
	require.Len(t, code, 4)
	assert.Equal(t, opcode(style.PropBorderTopColor), code[0].OPV.Opcode())
	assert.Equal(t, uint32(red), code[0].Operands[0])   // top
	assert.Equal(t, uint32(green), code[1].Operands[0]) // right
	assert.Equal(t, uint32(red), code[2].Operands[0])   // bottom
	assert.Equal(t, uint32(green), code[3].Operands[0]) // left
}

func TestBorderShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.compile")
	defer teardown()
	//
	c := New(nil)
	code := compileValue(t, c, "border-left", "red 2px")
	require.Len(t, code, 3)
	assert.Equal(t, opcode(style.PropBorderLeftWidth), code[0].OPV.Opcode())
	assert.Equal(t, 2, pxOf(t, code[0]))
	assert.Equal(t, bytecode.FlagValueInitial, code[1].OPV.FlagValue(), "omitted style resets to initial")
	assert.Equal(t, bytecode.ValueColor, code[2].OPV.Value())
	//
	code = compileValue(t, c, "border", "dashed thin")
	require.Len(t, code, 12)
	dashed, _ := style.PropBorderTopStyle.KeywordIndex(style.KeywordDashed)
	for side := 0; side < 4; side++ {
		props := style.BorderSideProperties(side)
		for i := 0; i < 3; i++ {
			assert.Equal(t, opcode(props[i]), code[side*3+i].OPV.Opcode())
		}
		assert.True(t, bytecode.IsKeywordTag(code[side*3].OPV.Value()))
		assert.Equal(t, bytecode.KeywordTag(dashed), code[side*3+1].OPV.Value())
		assert.Equal(t, bytecode.FlagValueInitial, code[side*3+2].OPV.FlagValue())
	}
}
