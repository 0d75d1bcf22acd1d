package tree

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNodeChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.tree")
	defer teardown()
	//
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(b).AddChild(nil).AddChild(c)
	assert.Equal(t, 3, root.ChildCount(), "nil children are ignored")
	assert.Equal(t, 1, root.IndexOfChild(b))
	assert.Equal(t, -1, root.IndexOfChild(root))
	assert.Equal(t, root, c.Parent())
	assert.Nil(t, root.Parent())
	ch, ok := root.Child(2)
	assert.True(t, ok)
	assert.Equal(t, "c", ch.Payload)
	_, ok = root.Child(3)
	assert.False(t, ok)
	_, ok = root.Child(-1)
	assert.False(t, ok)
	chs := root.Children()
	assert.Equal(t, []*Node[string]{a, b, c}, chs)
	chs[0] = nil
	assert.Equal(t, a, root.Children()[0], "children are returned as a copy")
}

func TestConcurrentAddChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.tree")
	defer teardown()
	//
	root := NewNode(0)
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			root.AddChild(NewNode(i))
			root.Children()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, root.ChildCount())
}
