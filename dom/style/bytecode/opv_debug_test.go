//go:build cssdebug

package bytecode

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestEncodeRejectsOversizedFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.bytecode")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	assert.Panics(t, func() { Encode(MaxOpcode+1, 0, 0) })
	assert.Panics(t, func() { Encode(0, 0, MaxValue+1) })
	assert.NotPanics(t, func() { Encode(MaxOpcode, FlagImportant, MaxValue) })
}
