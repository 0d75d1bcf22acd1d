package styledtree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/csscascade/dom/style"
	"github.com/npillmayer/csscascade/tree"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump returns a printable representation of a styled tree. For every
// node the values of props are listed.
func Dump(root *tree.Node[*StyNode], props ...style.PropertyID) string {
	if root == nil {
		return "<empty tree>"
	}
	t := tp.New()
	dumpNode(t, root, props)
	return t.String()
}

func dumpNode(branch tp.Tree, n *tree.Node[*StyNode], props []style.PropertyID) {
	sn := Node(n)
	b := branch.AddBranch(label(sn.HTMLNode()))
	switch {
	case sn.Err() != nil:
		b.AddMetaNode("error", sn.Err().Error())
	case sn.Styles() != nil:
		for _, id := range props {
			b.AddMetaNode(id.String(), sn.Styles().Slot(id).String())
		}
	}
	for i := 0; i < n.ChildCount(); i++ {
		if ch, ok := n.Child(i); ok {
			dumpNode(b, ch, props)
		}
	}
}

func label(h *html.Node) string {
	if h.Type == html.TextNode {
		s := strings.TrimSpace(h.Data)
		if r := []rune(s); len(r) > 20 {
			s = string(r[:20]) + "…"
		}
		return fmt.Sprintf("%q", s)
	}
	var sb strings.Builder
	sb.WriteString("<" + h.Data)
	for _, a := range h.Attr {
		if a.Key == "id" || a.Key == "class" {
			fmt.Fprintf(&sb, " %s=%q", a.Key, a.Val)
		}
	}
	sb.WriteString(">")
	return sb.String()
}
