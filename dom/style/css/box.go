package css

import (
	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/dom/style/computed"
)

// Edges holds a dimension for each side of a box, ordered by PosDir.
type Edges [4]DimenT

// Margins returns the margins of a computed style. Margins which cannot be
// converted without layout context are unset (see DimenT.IsNone).
func Margins(s *computed.Style) Edges {
	return edges(s.Margin)
}

// Padding returns the padding of a computed style.
func Padding(s *computed.Style) Edges {
	return edges(func(side computed.Side) computed.Value {
		return s.Padding(side)
	})
}

// BorderWidths returns the used border widths of a computed style: a side
// with border style 'none' or 'hidden' has width 0.
func BorderWidths(s *computed.Style) Edges {
	return edges(func(side computed.Side) computed.Value {
		switch s.BorderStyle(side) {
		case style.KeywordNone, style.KeywordHidden:
			return computed.Px(0)
		}
		return s.BorderWidth(side)
	})
}

// Size returns the content width and height of a computed style.
func Size(s *computed.Style) (w DimenT, h DimenT) {
	w, err := DimenFromLength(s.Width())
	if err != nil {
		tracer().Debugf("width: %v", err)
	}
	h, err = DimenFromLength(s.Height())
	if err != nil {
		tracer().Debugf("height: %v", err)
	}
	return w, h
}

func edges(get func(computed.Side) computed.Value) Edges {
	var e Edges
	for dir := Top; dir <= Left; dir++ {
		d, err := DimenFromLength(get(computed.Side(dir)))
		if err != nil {
			tracer().Debugf("edge %d: %v", dir, err)
			continue
		}
		e[dir] = d
	}
	return e
}
