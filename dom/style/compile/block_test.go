package compile

import (
	"errors"
	"testing"

	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.compile")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	decls := []Declaration{
		{Property: "color", Value: "red"},
		{Property: "margin", Value: "1px 2px 3px 4px 5px"},
		{Property: "padding", Value: "2px", Important: true},
		{Property: "colour", Value: "blue"},
	}
	c := New(nil)
	buf := bytecode.NewBuffer(0)
	result, err := c.CompileBlock(decls, buf)
	require.NoError(t, err)
	require.Len(t, result.Spans, 4)
	assert.Equal(t, 8, result.Spans[0].Len())
	assert.Zero(t, result.Spans[1].Len())
	assert.Equal(t, 4*12, result.Spans[2].Len())
	assert.Zero(t, result.Spans[3].Len())
	rejects := result.Rejects()
	require.Len(t, rejects, 2)
	var rej *RejectError
	require.True(t, errors.As(rejects[1], &rej))
	assert.Equal(t, "colour", rej.Property)
	assert.Equal(t, result.Spans[2].End, buf.Len())
}

func TestCompileBlockOutOfMemory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.compile")
	defer teardown()
	//
	c := New(nil)
	buf := bytecode.NewBuffer(0)
	buf.SetLimit(20)
	decls := []Declaration{
		{Property: "color", Value: "red"},       // 8 bytes
		{Property: "margin-top", Value: "1px"},  // 12 bytes
		{Property: "margin-left", Value: "1px"}, // exceeds limit
		{Property: "margin-right", Value: "auto"},
	}
	result, err := c.CompileBlock(decls, buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bytecode.ErrOutOfMemory))
	assert.False(t, errors.Is(err, ErrCompileReject))
	assert.Equal(t, 20, buf.Len(), "failed commit must not change the buffer")
	assert.Zero(t, result.Spans[2].Len())
	//
	buf.Seal()
	_, err = c.CompileBlock(decls[:1], bytecode.NewBuffer(0))
	assert.NoError(t, err)
	_, err = c.CompileBlock(decls[:1], buf)
	assert.True(t, errors.Is(err, bytecode.ErrSealed))
}
