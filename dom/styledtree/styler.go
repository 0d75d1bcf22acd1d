package styledtree

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/bytecode"
	"github.com/npillmayer/csscascade/dom/style/cascade"
	"github.com/npillmayer/csscascade/dom/style/computed"
	"github.com/npillmayer/csscascade/dom/style/cssom"
	"github.com/npillmayer/csscascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/csscascade/tree"
	"github.com/npillmayer/schuko"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// Styler computes the styles for the nodes of a styled tree.
type Styler struct {
	styles  *cssom.CompiledStyles
	env     cascade.Env
	workers int
	mx      sync.Mutex
	errs    error // errors of individual nodes
}

// NewStyler creates a styler for a set of compiled styles, which should be
// frozen. conf may be nil, in which case defaults apply.
func NewStyler(styles *cssom.CompiledStyles, conf schuko.Configuration) (*Styler, error) {
	if styles == nil {
		return nil, errors.New("styler needs compiled styles")
	}
	defaults, err := cascade.NewUADefaults(conf)
	if err != nil {
		return nil, err
	}
	s := &Styler{
		styles:  styles,
		workers: runtime.NumCPU(),
		env: cascade.Env{
			Strings:  styles.Strings(),
			Defaults: defaults,
		},
	}
	if conf != nil {
		if conf.IsSet("css.workers") {
			s.workers = conf.GetInt("css.workers")
		}
		s.env.Strict = conf.GetBool("css.strict")
	}
	if s.workers < 1 {
		s.workers = 1
	}
	return s, nil
}

// SetDefaults replaces the provider of host defaults.
func (s *Styler) SetDefaults(p cascade.DefaultProvider) {
	s.env.Defaults = p
}

// Style styles every node of a styled tree, parents before children.
//
// A node which cannot be styled, e.g. because of a missing host default,
// is left without style (see StyNode.Err) and styling continues; the
// errors of all such nodes are returned together. In strict mode,
// malformed bytecode stops styling immediately.
func (s *Styler) Style(ctx context.Context, root *tree.Node[*StyNode]) error {
	s.mx.Lock()
	s.errs = nil
	s.mx.Unlock()
	n, err := tree.TopDownLevels(ctx, root, s.workers, s.styleNode)
	tracer().Debugf("styled %d nodes with %d workers", n, s.workers)
	if err != nil {
		return err
	}
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.errs
}

func (s *Styler) styleNode(n, parent *tree.Node[*StyNode], _ int) error {
	sn := Node(n)
	sn.err = nil
	h := sn.HTMLNode()
	var decls []cascade.Declaration
	var hints []style.Hint
	if h.Type == html.ElementNode {
		var err error
		if decls, err = s.styles.Match(h); err != nil {
			return fmt.Errorf("<%s>: %w", h.Data, err)
		}
		hints = style.HintsForHTMLNode(h)
	}
	cascaded, err := cascade.Cascade(decls, hints, s.env)
	if err != nil {
		if errors.Is(err, bytecode.ErrMalformedBytecode) {
			return fmt.Errorf("<%s>: %w", h.Data, err)
		}
		s.fail(sn, err)
		return nil
	}
	var pstyles *computed.Style
	if parent != nil {
		if pstyles = Node(parent).Styles(); pstyles == nil {
			tracer().Infof("<%s>: parent has no style, resolving as root", h.Data)
		}
	}
	computedStyles, err := cascade.Resolve(pstyles, cascaded, s.env.Defaults)
	if err != nil {
		s.fail(sn, err)
		return nil
	}
	sn.SetStyles(computedStyles)
	return nil
}

func (s *Styler) fail(sn *StyNode, err error) {
	h := sn.HTMLNode()
	sn.err = fmt.Errorf("<%s>: %w", h.Data, err)
	tracer().Errorf("styling %v", sn.err)
	s.mx.Lock()
	defer s.mx.Unlock()
	s.errs = multierr.Append(s.errs, sn.err)
}

// StyleDocument builds and styles the styled tree for an HTML document.
// The author stylesheets are taken from the <style> elements of the
// document, inline styles from style attributes. conf may be nil.
func StyleDocument(ctx context.Context, doc *html.Node, conf schuko.Configuration) (*tree.Node[*StyNode], error) {
	limit := 0
	if conf != nil {
		limit = conf.GetInt("css.bytecode.limit")
	}
	styles := cssom.NewCompiledStyles(limit)
	styles.SetInlineParser(douceuradapter.ParseInline)
	for _, sheet := range douceuradapter.ExtractStyleElements(doc) {
		if err := styles.Add(sheet, cascade.OriginAuthor); err != nil {
			return nil, err
		}
	}
	styles.Freeze()
	for _, rej := range styles.Rejected() {
		tracer().Infof("stylesheet: %v", rej)
	}
	styler, err := NewStyler(styles, conf)
	if err != nil {
		return nil, err
	}
	root, err := BuildFromHTML(doc)
	if err != nil {
		return nil, err
	}
	return root, styler.Style(ctx, root)
}
