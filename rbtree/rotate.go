// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/redblack/fault"
)

// the right child of pivot takes its place and pivot becomes its left child
//
//	  p                r
//	 / \              / \
//	a   r     =>     p   c
//	   / \          / \
//	  b   c        a   b
func (tree *Tree[T]) rotateLeft(pivot *Node[T]) {
	s := tree.sentinel
	if s == pivot || s == pivot.right {
		fault.Panicf("rbtree: rotate left at: %v without a right child", pivot.value)
	}

	r := pivot.right
	pivot.right = r.left
	if s != r.left {
		r.left.up = pivot
	}
	r.up = pivot.up
	tree.replaceChild(pivot.up, pivot, r)
	r.left = pivot
	pivot.up = r
}

// the left child of pivot takes its place and pivot becomes its right child
//
//	    p            l
//	   / \          / \
//	  l   c   =>   a   p
//	 / \              / \
//	a   b            b   c
func (tree *Tree[T]) rotateRight(pivot *Node[T]) {
	s := tree.sentinel
	if s == pivot || s == pivot.left {
		fault.Panicf("rbtree: rotate right at: %v without a left child", pivot.value)
	}

	l := pivot.left
	pivot.left = l.right
	if s != l.right {
		l.right.up = pivot
	}
	l.up = pivot.up
	tree.replaceChild(pivot.up, pivot, l)
	l.right = pivot
	pivot.up = l
}

// make node occupy the child slot of parent that old occupied,
// a sentinel parent means old was the root
//
// only the downward link is changed
func (tree *Tree[T]) replaceChild(parent *Node[T], old *Node[T], node *Node[T]) {
	switch {
	case tree.sentinel == parent:
		tree.root = node
	case old == parent.left:
		parent.left = node
	case old == parent.right:
		parent.right = node
	default:
		fault.Panicf("rbtree: node: %v is not a child of: %v", old.value, parent.value)
	}
}
