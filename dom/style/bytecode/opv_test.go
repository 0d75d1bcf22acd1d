package bytecode

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestOPVRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.bytecode")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	values := []uint16{0, 1, 2, 0x7f, 0x100, 0x1ff, 0x2000, MaxValue - 1, MaxValue}
	for op := Opcode(0); op <= MaxOpcode; op++ {
		for f := 0; f < 1<<FlagsBits; f++ {
			for _, v := range values {
				opv := Encode(op, Flags(f), v)
				o, fl, val := opv.Decode()
				if o != op || fl != Flags(f) || val != v {
					t.Fatalf("expected (%d,%#x,%#x), is (%d,%#x,%#x)", op, f, v, o, fl, val)
				}
			}
		}
	}
	for v := 0; v <= MaxValue; v++ {
		opv := Encode(MaxOpcode, 0xff, uint16(v))
		if opv.Value() != uint16(v) || opv.Opcode() != MaxOpcode {
			t.Fatalf("value %#x does not survive round trip, is %#x", v, opv.Value())
		}
	}
}

func TestOPVFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.bytecode")
	defer teardown()
	//
	opv := Encode(12, MakeFlags(true, FlagValueInherit), 0)
	assert.True(t, opv.IsImportant())
	assert.True(t, opv.HasFlagValue())
	assert.True(t, opv.IsInherit())
	assert.Equal(t, FlagValueInherit, opv.FlagValue())
	//
	opv = Encode(12, MakeFlags(false, FlagValueNone), KeywordTag(3))
	assert.False(t, opv.IsImportant())
	assert.False(t, opv.HasFlagValue())
	assert.False(t, opv.IsInherit())
	assert.True(t, IsKeywordTag(opv.Value()))
	assert.Equal(t, 3, KeywordIndex(opv.Value()))
	//
	for _, fv := range []FlagValue{FlagValueInitial, FlagValueRevert, FlagValueUnset} {
		opv = Encode(1, MakeFlags(false, fv), 0)
		assert.Equal(t, fv, opv.FlagValue())
		assert.False(t, opv.IsInherit())
	}
	assert.Equal(t, FlagValueUnset, FlagValueFromKeyword("unset"))
	assert.Equal(t, FlagValueNone, FlagValueFromKeyword("auto"))
}

func TestFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.bytecode")
	defer teardown()
	//
	assert.Equal(t, FixedOne, FixedFromInt(1))
	assert.Equal(t, 12, FixedFromInt(12).Int())
	assert.Equal(t, -3, FixedFromFloat(-3.5).Int())
	assert.InDelta(t, 1.5, FixedFromFloat(1.5).Float(), 0.001)
	assert.Equal(t, "0.5", FixedFromFloat(0.5).String())
}

func TestUnits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.bytecode")
	defer teardown()
	//
	u, ok := UnitFromString("rem")
	assert.True(t, ok)
	assert.Equal(t, UnitREM, u)
	assert.True(t, u.IsLength())
	assert.False(t, u.IsAbsolute())
	assert.True(t, UnitPCT.IsPercentage())
	assert.False(t, UnitPCT.IsLength())
	assert.Equal(t, "vmax", UnitVMAX.String())
	_, ok = UnitFromString("furlong")
	assert.False(t, ok)
}
