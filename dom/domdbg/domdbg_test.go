package domdbg

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/npillmayer/csscascade/dom"
	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var myhtml = `<html><head>
<style>
  body { border-color: white; }
  p { margin-top: 8px; padding: 2px 4px }
</style>
</head><body>
  <p>The quick brown fox jumps over the lazy dog.</p>
  <p id="world">Hello <b>World</b>!</p>
</body>
`

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.dom")
	defer teardown()
	//
	doc, err := dom.Parse(context.Background(), strings.NewReader(myhtml), nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(doc, &buf, nil))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label="body"`)
	assert.Contains(t, out, "The␣quick␣")
	assert.Contains(t, out, ">margin-top:</td><td>8px<")
	assert.Contains(t, out, ">Padding<")
	assert.Contains(t, out, ">border-top-color:</td>")
	assert.Contains(t, out, "node00001 -> node00002")
	//
	buf.Reset()
	require.NoError(t, ToGraphViz(doc, &buf, []string{style.PGColor}))
	assert.NotContains(t, buf.String(), ">Padding<")
	assert.Contains(t, buf.String(), ">color:</td>")
	Dotty(doc, t)
}

func TestGraphVizEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(nil, &buf, nil))
	assert.Equal(t, "}\n", buf.String()[buf.Len()-2:])
}
