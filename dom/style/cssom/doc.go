/*
Package cssom holds the stylesheets of a document in compiled form.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Stylesheets enter the engine through interfaces StyleSheet and Rule, which
de-couple the styling engine from any particular CSS parser. A concrete
implementation on top of github.com/aymerick/douceur may be found in
sub-package douceuradapter.

Once added to a CompiledStyles, the declarations of every rule are
compiled to bytecode, and the rule's selectors are compiled with
https://godoc.org/github.com/andybalholm/cascadia. Matching an element
then yields the compiled declarations applicable to it, each tagged with
its cascade priority: origin, selector specificity and document order.

Selectors with pseudo-elements and at-rules (e.g. @media) are not
supported and are skipped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'css.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("css.cssom")
}
