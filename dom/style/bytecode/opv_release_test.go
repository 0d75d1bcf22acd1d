//go:build !cssdebug

package bytecode

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestEncodeTruncatesOversizedFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.bytecode")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	assert.NotPanics(t, func() { debugAssert(false, "never fires in release builds") })
	var opv OPV
	assert.NotPanics(t, func() { opv = Encode(MaxOpcode+1, FlagImportant, 0xffff) })
	op, fl, v := opv.Decode()
	assert.Equal(t, Opcode(0), op)
	assert.Equal(t, FlagImportant, fl)
	assert.Equal(t, uint16(MaxValue), v)
}
