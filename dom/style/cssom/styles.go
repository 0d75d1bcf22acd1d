package cssom

import (
	"errors"
	"fmt"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/cascade"
	"github.com/npillmayer/csscascade/dom/style/compile"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// CompiledStyles is a set of stylesheets compiled to bytecode, ready for
// matching against elements of an HTML document.
//
// Stylesheets are added one after the other; the order in which they are
// added is the document order of their declarations. After the last
// stylesheet has been added, a CompiledStyles may be matched from
// multiple goroutines.
type CompiledStyles struct {
	sync.RWMutex
	compiler *compile.Compiler
	buf      *bytecode.Buffer
	rules    []compiledRule
	order    uint32       // document order of the last declaration
	inline   InlineParser // parser for style attributes, may be nil
	rejected error        // dropped rules and declarations
}

type compiledRule struct {
	selectors cascadia.SelectorGroup
	origin    cascade.Origin
	decls     []compiledDecl
}

type compiledDecl struct {
	span  bytecode.Span
	order uint32
}

// NewCompiledStyles creates an empty set of compiled styles. limit
// restricts the size of the compiled code in bytes, 0 means no limit.
func NewCompiledStyles(limit int) *CompiledStyles {
	buf := bytecode.NewBuffer(1024)
	buf.SetLimit(limit)
	return &CompiledStyles{
		compiler: compile.New(nil),
		buf:      buf,
	}
}

// Strings returns the string table referenced by compiled code.
func (cs *CompiledStyles) Strings() *bytecode.StringTable {
	return cs.compiler.Strings()
}

// SetInlineParser sets the parser for style attributes. Without one,
// style attributes are ignored.
func (cs *CompiledStyles) SetInlineParser(p InlineParser) {
	cs.Lock()
	defer cs.Unlock()
	cs.inline = p
}

// Add compiles the rules of a stylesheet with the given origin.
//
// Rules with invalid selectors and declarations which cannot be compiled
// are dropped and reported by Rejected. An error is returned if the
// code limit is exceeded or the styles have been frozen; rules compiled
// before the error remain in effect.
func (cs *CompiledStyles) Add(sheet StyleSheet, origin cascade.Origin) error {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	cs.Lock()
	defer cs.Unlock()
	for _, rule := range sheet.Rules() {
		sels, err := cascadia.ParseGroup(rule.Selector())
		if err != nil {
			tracer().Infof("dropping rule %q: %v", rule.Selector(), err)
			cs.rejected = multierr.Append(cs.rejected, fmt.Errorf("selector %q: %w", rule.Selector(), err))
			continue
		}
		decls := rule.Declarations()
		result, err := cs.compiler.CompileBlock(decls, cs.buf)
		if err != nil {
			return err
		}
		cs.rejected = multierr.Append(cs.rejected, result.Rejected)
		cr := compiledRule{selectors: sels, origin: origin}
		for i, span := range result.Spans {
			if span.Len() == 0 {
				continue
			}
			cs.order++
			cr.decls = append(cr.decls, compiledDecl{span: span, order: cs.order})
			tracer().Debugf("%s { %s } compiled to %d bytes", rule.Selector(), decls[i], span.Len())
		}
		if len(cr.decls) > 0 {
			cs.rules = append(cs.rules, cr)
		}
	}
	return nil
}

// Freeze seals the compiled code; further calls to Add will fail.
func (cs *CompiledStyles) Freeze() {
	cs.buf.Seal()
}

// Rejected returns the errors for rules and declarations dropped so far.
func (cs *CompiledStyles) Rejected() []error {
	cs.RLock()
	defer cs.RUnlock()
	return multierr.Errors(cs.rejected)
}

// RuleCount returns the number of rules with at least one compiled
// declaration.
func (cs *CompiledStyles) RuleCount() int {
	cs.RLock()
	defer cs.RUnlock()
	return len(cs.rules)
}

// Match returns the declarations applying to an element, in no particular
// order. The specificity of a rule with a selector group is the highest
// specificity of the group's selectors matching the element.
// Declarations of the element's style attribute are included if an
// inline parser is set; they carry InlineSpecificity and author origin.
//
// Non-element nodes match nothing.
func (cs *CompiledStyles) Match(node *html.Node) ([]cascade.Declaration, error) {
	if node == nil || node.Type != html.ElementNode {
		return nil, nil
	}
	cs.RLock()
	defer cs.RUnlock()
	var decls []cascade.Declaration
	for _, r := range cs.rules {
		spec, ok := matchGroup(r.selectors, node)
		if !ok {
			continue
		}
		for _, d := range r.decls {
			decls = append(decls, cascade.Declaration{
				Code: cs.buf.Block(d.span),
				Priority: cascade.Priority{
					Origin:      r.origin,
					Specificity: spec,
					Order:       d.order,
				},
			})
		}
	}
	inline, err := cs.matchInline(node)
	return append(decls, inline...), err
}

func matchGroup(group cascadia.SelectorGroup, node *html.Node) (cascade.Specificity, bool) {
	var spec cascade.Specificity
	matched := false
	for _, sel := range group {
		if !sel.Match(node) {
			continue
		}
		s := sel.Specificity()
		if sp := cascade.MakeSpecificity(s[0], s[1], s[2]); !matched || sp > spec {
			spec = sp
		}
		matched = true
	}
	return spec, matched
}

// matchInline compiles the style attribute of an element. Inline code is
// compiled into a buffer private to the element.
func (cs *CompiledStyles) matchInline(node *html.Node) ([]cascade.Declaration, error) {
	if cs.inline == nil {
		return nil, nil
	}
	var attr string
	found := false
	for _, a := range node.Attr {
		if a.Namespace == "" && a.Key == "style" {
			attr, found = a.Val, true
			break
		}
	}
	if !found {
		return nil, nil
	}
	parsed, err := cs.inline(attr)
	if err != nil {
		tracer().Infof("ignoring style attribute of <%s>: %v", node.Data, err)
		return nil, nil
	}
	buf := bytecode.NewBuffer(64)
	result, err := cs.compiler.CompileBlock(parsed, buf)
	if err != nil {
		return nil, err
	}
	for _, rej := range multierr.Errors(result.Rejected) {
		var re *compile.RejectError
		if errors.As(rej, &re) {
			tracer().Infof("<%s style>: dropping %s: %s", node.Data, re.Property, re.Reason)
		}
	}
	buf.Seal()
	decls := make([]cascade.Declaration, 0, len(result.Spans))
	for i, span := range result.Spans {
		if span.Len() == 0 {
			continue
		}
		decls = append(decls, cascade.Declaration{
			Code: buf.Block(span),
			Priority: cascade.Priority{
				Origin:      cascade.OriginAuthor,
				Specificity: cascade.InlineSpecificity,
				Order:       cs.order + uint32(i) + 1,
			},
		})
	}
	return decls, nil
}
