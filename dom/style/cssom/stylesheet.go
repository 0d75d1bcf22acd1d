package cssom

import "github.com/npillmayer/csscascade/dom/style/compile"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// styling engine, we introduce an interface for CSS stylesheets.
// Clients for the styling engine will have to provide a concrete
// implementation of this interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string                    // the prelude / selectors of the rule
	Declarations() []compile.Declaration // declarations in source order
}

// InlineParser parses the content of a style attribute into declarations.
type InlineParser func(style string) ([]compile.Declaration, error)
