package computed

import (
	"github.com/npillmayer/csscascade/dom/style"
	tp "github.com/xlab/treeprint"
)

var groupOrder = []string{
	style.PGDisplay, style.PGDimension, style.PGMargins, style.PGPadding,
	style.PGBorder, style.PGColor, style.PGFont, style.PGText, style.PGContent,
}

// AddTo appends the set properties of a style, grouped by property group,
// to a tree printer branch.
func (s *Style) AddTo(branch tp.Tree) {
	for _, g := range groupOrder {
		var group tp.Tree
		for _, id := range style.Properties(g) {
			sl := s.Slot(id)
			if !sl.IsSet() {
				continue
			}
			if group == nil {
				group = branch.AddBranch(g)
			}
			group.AddMetaNode(sl.Source.String(), id.String()+": "+sl.String())
		}
	}
}

// Dump returns a tree-shaped listing of the set properties of a style,
// for debugging.
func Dump(s *Style) string {
	printer := tp.New()
	if s == nil {
		printer.AddNode("<nil>")
		return printer.String()
	}
	s.AddTo(printer)
	return printer.String()
}
