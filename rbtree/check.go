// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"

	"github.com/bitmark-inc/redblack/fault"
)

// Check - verify the structure of the tree
//
// returns nil or the first problem found: a broken parent link, a red
// root, a red node with a red child, unequal black heights, values out
// of order or an incorrect count
func (tree *Tree[T]) Check() error {
	s := tree.sentinel
	if s != s.left || s != s.right || s != s.up || Black != s.color || s.deficit {
		return fault.ErrSentinelCorrupt
	}

	if s == tree.root {
		if 0 != tree.count {
			return fmt.Errorf("%w: empty tree count: %d", fault.ErrCountMismatch, tree.count)
		}
		return nil
	}

	if Red == tree.root.color {
		return fmt.Errorf("%w: %v", fault.ErrRedRoot, tree.root.value)
	}

	c := checker[T]{tree: tree}
	if _, err := c.check(tree.root, s); nil != err {
		return err
	}
	if c.count != tree.count {
		return fmt.Errorf("%w: nodes: %d  expected: %d", fault.ErrCountMismatch, c.count, tree.count)
	}
	return nil
}

// BlackHeight - number of black nodes on any path from the root down
// to a leaf, counting the sentinel and not the root
func (tree *Tree[T]) BlackHeight() int {
	if tree.IsEmpty() {
		return 0
	}
	h := 1 // sentinel
	for p := tree.root.left; tree.sentinel != p; p = p.left {
		if Black == p.color {
			h += 1
		}
	}
	return h
}

// state for a single consistency check
type checker[T any] struct {
	tree     *Tree[T]
	previous *Node[T]
	count    int
}

// internal: consistency checker, returns the black height of p
// including the sentinel
func (c *checker[T]) check(p *Node[T], up *Node[T]) (int, error) {
	s := c.tree.sentinel
	if s == p {
		return 1, nil
	}

	if p.up != up {
		return 0, fmt.Errorf("%w at node: %v", fault.ErrParentLinkBroken, p.value)
	}
	if p.deficit {
		return 0, fmt.Errorf("%w: residual deficit at node: %v", fault.ErrBlackHeightMismatch, p.value)
	}
	if Red == p.color && (Red == p.left.color || Red == p.right.color) {
		return 0, fmt.Errorf("%w at node: %v", fault.ErrRedRedEdge, p.value)
	}

	lh, err := c.check(p.left, p)
	if nil != err {
		return 0, err
	}

	if nil != c.previous && c.tree.compare(c.previous.value, p.value) >= 0 {
		return 0, fmt.Errorf("%w: %v before: %v", fault.ErrOrderViolation, c.previous.value, p.value)
	}
	c.previous = p
	c.count += 1

	rh, err := c.check(p.right, p)
	if nil != err {
		return 0, err
	}

	if lh != rh {
		return 0, fmt.Errorf("%w at node: %v  left: %d  right: %d", fault.ErrBlackHeightMismatch, p.value, lh, rh)
	}
	if Black == p.color {
		lh += 1
	}
	return lh, nil
}
