package cascade

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func samplePriorities() []Priority {
	var prios []Priority
	order := uint32(0)
	for _, origin := range []Origin{OriginHint, OriginUserAgent, OriginUser, OriginAuthor} {
		for _, spec := range []Specificity{0, MakeSpecificity(0, 0, 1), MakeSpecificity(0, 1, 0),
			MakeSpecificity(1, 0, 0), InlineSpecificity} {
			for _, imp := range []bool{false, true} {
				order++
				prios = append(prios, Priority{origin, spec, imp, order % 5})
				order++
				prios = append(prios, Priority{origin, spec, imp, 100 + order})
			}
		}
	}
	return prios
}

func TestOutranksTotalOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	prios := samplePriorities()
	for i, p := range prios {
		assert.False(t, p.Outranks(p), "%v outranks itself", p)
		for j, q := range prios {
			if i == j || p == q {
				continue
			}
			if p.level() == q.level() && p.Specificity == q.Specificity && p.Order == q.Order {
				continue // equal rank, only possible with duplicate document order
			}
			assert.True(t, p.Outranks(q) != q.Outranks(p), "exactly one of %v, %v has to win", p, q)
		}
	}
}

func TestOutranksTransitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	prios := samplePriorities()
	for _, a := range prios {
		for _, b := range prios {
			if !a.Outranks(b) {
				continue
			}
			for _, c := range prios {
				if b.Outranks(c) {
					assert.True(t, a.Outranks(c), "%v > %v > %v, but not %v > %v", a, b, c, a, c)
				}
			}
		}
	}
}

func TestOutranksRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.cascade")
	defer teardown()
	//
	id := MakeSpecificity(1, 0, 0)
	elem := MakeSpecificity(0, 0, 1)
	authorImp := Priority{Origin: OriginAuthor, Specificity: elem, Important: true, Order: 1}
	authorID := Priority{Origin: OriginAuthor, Specificity: id, Order: 2}
	assert.True(t, authorImp.Outranks(authorID), "!important beats specificity")
	uaImp := Priority{Origin: OriginUserAgent, Important: true, Order: 0}
	assert.True(t, uaImp.Outranks(authorImp), "important origins are reversed")
	userNormal := Priority{Origin: OriginUser, Specificity: id, Order: 9}
	assert.True(t, authorID.Outranks(userNormal))
	inline := Priority{Origin: OriginAuthor, Specificity: InlineSpecificity, Order: 0}
	assert.True(t, inline.Outranks(authorID), "inline style beats ids")
	later := Priority{Origin: OriginAuthor, Specificity: id, Order: 3}
	assert.True(t, later.Outranks(authorID), "document order breaks ties")
	hint := Priority{Origin: OriginHint, Specificity: InlineSpecificity, Order: 99}
	assert.True(t, Priority{Origin: OriginUserAgent}.Outranks(hint))
	assert.Equal(t, "(1,0,0)", id.String())
	assert.Equal(t, MakeSpecificity(0, 255, 0), MakeSpecificity(0, 1000, 0))
}
