package cssom

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/cascade"
	"github.com/npillmayer/csscascade/dom/style/compile"
	"github.com/npillmayer/csscascade/dom/style/computed"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type testRule struct {
	sel   string
	decls []compile.Declaration
}

func (r testRule) Selector() string                    { return r.sel }
func (r testRule) Declarations() []compile.Declaration { return r.decls }

type testSheet []Rule

func (s *testSheet) AppendRules(other StyleSheet) { *s = append(*s, other.Rules()...) }
func (s *testSheet) Empty() bool                  { return len(*s) == 0 }
func (s *testSheet) Rules() []Rule                { return *s }

func rule(sel string, kv ...string) Rule {
	r := testRule{sel: sel}
	for i := 0; i+1 < len(kv); i += 2 {
		r.decls = append(r.decls, compile.Declaration{Property: kv[i], Value: kv[i+1]})
	}
	return r
}

func parseHTML(t *testing.T, doc string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return root
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findByID(ch, id); r != nil {
			return r
		}
	}
	return nil
}

const testDoc = `<html><body>
<p id="intro" class="lead">Hello <span id="name" style="color: navy; margin-left: 2px">World</span></p>
</body></html>`

func TestMatchSpecificityAndOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cssom")
	defer teardown()
	//
	ua := &testSheet{rule("p", "display", "block", "margin-top", "1em")}
	author := &testSheet{
		rule("p.lead, #intro", "color", "red"),
		rule("span", "color", "blue"),
		rule("p", "color", "green", "margin-top", "bogus"),
		rule("p::before", "color", "green"),
	}
	cs := NewCompiledStyles(0)
	require.NoError(t, cs.Add(ua, cascade.OriginUserAgent))
	require.NoError(t, cs.Add(author, cascade.OriginAuthor))
	cs.Freeze()
	assert.Equal(t, 4, cs.RuleCount())
	assert.Len(t, cs.Rejected(), 2, "bogus value and pseudo-element selector")
	//
	doc := parseHTML(t, testDoc)
	decls, err := cs.Match(findByID(doc, "intro"))
	require.NoError(t, err)
	require.Len(t, decls, 4)
	for _, d := range decls {
		switch d.Priority.Order {
		case 1, 2:
			assert.Equal(t, cascade.OriginUserAgent, d.Priority.Origin)
			assert.Equal(t, cascade.MakeSpecificity(0, 0, 1), d.Priority.Specificity)
		case 3:
			assert.Equal(t, cascade.MakeSpecificity(1, 0, 0), d.Priority.Specificity,
				"highest specificity of the matching selectors")
		case 5:
			assert.Equal(t, cascade.OriginAuthor, d.Priority.Origin)
		default:
			t.Errorf("unexpected declaration %v", d.Priority)
		}
	}
	decls, err = cs.Match(findByID(doc, "name"))
	require.NoError(t, err)
	assert.Len(t, decls, 1, "inline styles are ignored without parser")
	decls, err = cs.Match(doc)
	require.NoError(t, err)
	assert.Empty(t, decls)
	//
	err = cs.Add(&testSheet{rule("div", "color", "red")}, cascade.OriginUser)
	assert.True(t, errors.Is(err, bytecode.ErrSealed))
}

func TestMatchInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cssom")
	defer teardown()
	//
	cs := NewCompiledStyles(0)
	require.NoError(t, cs.Add(&testSheet{rule("#name", "color", "blue")}, cascade.OriginAuthor))
	cs.SetInlineParser(func(s string) ([]compile.Declaration, error) {
		var decls []compile.Declaration
		for _, part := range strings.Split(s, ";") {
			kv := strings.SplitN(part, ":", 2)
			if len(kv) == 2 {
				decls = append(decls, compile.Declaration{
					Property: strings.TrimSpace(kv[0]),
					Value:    strings.TrimSpace(kv[1]),
				})
			}
		}
		return decls, nil
	})
	decls, err := cs.Match(findByID(parseHTML(t, testDoc), "name"))
	require.NoError(t, err)
	require.Len(t, decls, 3)
	inline := 0
	for _, d := range decls {
		if d.Priority.Specificity == cascade.InlineSpecificity {
			inline++
			assert.True(t, d.Priority.Order > 1)
		}
	}
	assert.Equal(t, 2, inline)
	st, err := cascade.Cascade(decls, nil, cascade.Env{Strings: cs.Strings()})
	require.NoError(t, err)
	navy, _ := style.NamedColor("navy")
	assert.Equal(t, computed.Color(navy), st.Get(style.PropColor))
	assert.Equal(t, computed.Px(2), st.Get(style.PropMarginLeft))
}
