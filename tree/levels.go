package tree

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyTree is returned if a traversal is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Action is a function type to operate on tree nodes during a traversal.
// parent is nil for the node a traversal starts at; position is the
// index of n among the children of parent.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// TopDownLevels calls action for root and all of its descendents, level by
// level. The nodes of a level are processed by at most workers concurrent
// goroutines (workers < 1 means one). An action for a node is started only
// after the actions of all nodes of lower depth have returned, thus every
// node sees the completed work of its ancestors.
//
// The first error returned by an action stops the traversal: actions of
// the current level not yet started are skipped. Cancelling ctx stops the
// traversal before the next level. TopDownLevels returns the number of
// nodes of the levels entered.
func TopDownLevels[T comparable](ctx context.Context, root *Node[T], workers int, action Action[T]) (int, error) {
	if root == nil {
		return 0, ErrEmptyTree
	}
	if workers < 1 {
		workers = 1
	}
	type item struct {
		node, parent *Node[T]
		position     int
	}
	level := []item{{node: root}}
	count, depth := 0, 0
	for len(level) > 0 {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for _, it := range level {
			it := it
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return action(it.node, it.parent, it.position)
			})
		}
		err := g.Wait()
		count += len(level)
		if err != nil {
			return count, err
		}
		tracer().Debugf("level %d complete with %d nodes", depth, len(level))
		var next []item
		for _, it := range level {
			for i, ch := range it.node.Children() {
				next = append(next, item{node: ch, parent: it.node, position: i})
			}
		}
		level = next
		depth++
	}
	return count, nil
}
