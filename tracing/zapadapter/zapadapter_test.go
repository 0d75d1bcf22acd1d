package zapadapter

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
)

func TestTracerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	assert.Equal(t, tracing.LevelError, l.GetTraceLevel())
	l.Debugf("Hello %d", 1)
	l.Infof("Hello %d", 2)
	l.Errorf("Hello %d", 3)
	assert.NotContains(t, buf.String(), "Hello 1")
	assert.NotContains(t, buf.String(), "Hello 2")
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "Hello 3")
	//
	l.SetTraceLevel(tracing.LevelDebug)
	assert.Equal(t, tracing.LevelDebug, l.GetTraceLevel())
	l.Debugf("Hello %d", 4)
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "Hello 4")
}

func TestTracerFields(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetTraceLevel(tracing.LevelInfo)
	l.P("element", "p").P("property", "color").Infof("dropping declaration")
	out := buf.String()
	assert.Contains(t, out, "dropping declaration")
	assert.Contains(t, out, `"element": "p"`)
	assert.Contains(t, out, `"property": "color"`)
}

func TestConfigure(t *testing.T) {
	conf := testconfig.Conf{
		"tracing.adapter": "zap",
		"tracing.level":   "Debug",
	}
	tr := Configure(conf)
	defer tracing.SetTraceSelector(nil)
	_, ok := tr.(*Tracer)
	assert.True(t, ok, "configured tracer should be a zap tracer")
	assert.Equal(t, tracing.LevelDebug, tr.GetTraceLevel())
	assert.Same(t, tr, tracing.Select("css.cascade"))
	//
	tr = Configure(testconfig.Conf{"tracing.adapter": "nop"})
	_, ok = tr.(*Tracer)
	assert.False(t, ok)
}
