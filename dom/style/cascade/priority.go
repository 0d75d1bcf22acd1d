package cascade

import "fmt"

// Origin is the origin of a declaration.
type Origin uint8

// Origins, from weakest to strongest for normal declarations.
// Presentational hints of the host rank below every declaration.
const (
	OriginHint Origin = iota
	OriginUserAgent
	OriginUser
	OriginAuthor
)

var originNames = [...]string{"hint", "user-agent", "user", "author"}

func (o Origin) String() string {
	if int(o) < len(originNames) {
		return originNames[o]
	}
	return fmt.Sprintf("origin(%d)", uint8(o))
}

// Specificity is a selector specificity packed into 32 bits:
// inline style in bit 24, then ids, classes and type selectors with 8 bits
// each.
type Specificity uint32

// InlineSpecificity is the specificity of declarations of a style attribute.
const InlineSpecificity Specificity = 1 << 24

// MakeSpecificity packs a selector specificity (a, b, c). Counts saturate
// at 255.
func MakeSpecificity(a, b, c int) Specificity {
	return Specificity(sat(a)<<16 | sat(b)<<8 | sat(c))
}

func sat(n int) uint32 {
	if n < 0 {
		return 0
	} else if n > 255 {
		return 255
	}
	return uint32(n)
}

func (s Specificity) String() string {
	if s&InlineSpecificity != 0 {
		return "inline"
	}
	return fmt.Sprintf("(%d,%d,%d)", s>>16&0xff, s>>8&0xff, s&0xff)
}

// Priority is the cascade priority of a declaration, as attached by the
// selector matcher. Order is the position of a declaration in document
// order; it has to be unique per element for priorities to be totally
// ordered.
type Priority struct {
	Origin      Origin
	Specificity Specificity
	Important   bool
	Order       uint32
}

// level combines origin and importance. Important declarations reverse
// the order of origins.
func (p Priority) level() int {
	switch {
	case p.Origin == OriginHint:
		return 0
	case !p.Important:
		return int(p.Origin) // 1…3
	}
	return 7 - int(p.Origin) // author 4, user 5, user-agent 6
}

// Outranks is true if a declaration with priority p wins over one with
// priority q. Declarations are compared by origin and importance first,
// then by specificity, then by document order.
func (p Priority) Outranks(q Priority) bool {
	if lp, lq := p.level(), q.level(); lp != lq {
		return lp > lq
	}
	if p.Specificity != q.Specificity {
		return p.Specificity > q.Specificity
	}
	return p.Order > q.Order
}

func (p Priority) String() string {
	imp := ""
	if p.Important {
		imp = " !important"
	}
	return fmt.Sprintf("[%s %s #%d%s]", p.Origin, p.Specificity, p.Order, imp)
}
