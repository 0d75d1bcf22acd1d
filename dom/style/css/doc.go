/*
Package css provides layout-facing views of computed styles.

CSS properties are plentyful and some of them are complicated.
This package trys to shield layout clients from the cumbersome handling of
computed values: display keywords are converted to box context flags,
positions and box edges to option types with dimensions in design units
(see package github.com/npillmayer/tyse/core/dimen).


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'css.dom'.
func tracer() tracing.Trace {
	return tracing.Select("css.dom")
}
