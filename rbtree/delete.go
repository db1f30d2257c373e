// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/redblack/fault"
)

// Delete - removes a specific value from the tree
//
// returns Fail, leaving the tree unchanged, if the value is not present
func (tree *Tree[T]) Delete(value T) Status {
	s := tree.sentinel

	target := tree.find(value)
	if s == target {
		return Fail
	}

	splice := target
	splicedColor := splice.color
	replacement := s

	switch {
	case s == target.left:
		replacement = target.right
		tree.transplant(target, replacement)

	case s == target.right:
		replacement = target.left
		tree.transplant(target, replacement)

	default:
		// the successor has no left child, move it into target's place
		splice = tree.minimum(target.right)
		splicedColor = splice.color
		replacement = splice.right

		if target == splice.up {
			replacement.up = splice // may be the sentinel
		} else {
			tree.transplant(splice, replacement)
			splice.right = target.right
			splice.right.up = splice
		}
		tree.transplant(target, splice)
		splice.left = target.left
		splice.left.up = splice
		splice.color = target.color
	}
	tree.count -= 1

	// removing a red node cannot change any black height
	if Black == splicedColor {
		replacement.deficit = true
		tree.deleteFixup(replacement)
	}

	// the sentinel's parent is only meaningful during the fixup
	s.up = s
	s.deficit = false

	tree.freeNode(target)
	return Success
}

// replace the sub-tree rooted at old with the one rooted at node
//
// node may be the sentinel; its parent is set so that the fixup can
// find its way back up the tree
func (tree *Tree[T]) transplant(old *Node[T], node *Node[T]) {
	tree.replaceChild(old.up, old, node)
	node.up = old.up
}

// leftmost node of a non-empty sub-tree
func (tree *Tree[T]) minimum(p *Node[T]) *Node[T] {
	for tree.sentinel != p.left {
		p = p.left
	}
	return p
}

// rightmost node of a non-empty sub-tree
func (tree *Tree[T]) maximum(p *Node[T]) *Node[T] {
	for tree.sentinel != p.right {
		p = p.right
	}
	return p
}

// restore the red-black properties after a black node was spliced out
//
// node carries the deficit: every path through it is one black short.
// A red node absorbs the deficit by turning black.
func (tree *Tree[T]) deleteFixup(node *Node[T]) {
	for node.deficit && tree.root != node && Black == node.color {
		parent := node.up
		if tree.sentinel == parent {
			fault.Panicf("rbtree: delete: deficit at: %v has no parent", node.value)
		}

		if node == parent.left {
			sibling := parent.right
			if Red == sibling.color {
				sibling.color = Black
				parent.color = Red
				tree.rotateLeft(parent)
				sibling = parent.right
			}
			if tree.sentinel == sibling {
				fault.Panicf("rbtree: delete: deficit under: %v without sibling", parent.value)
			}

			if Black == sibling.left.color && Black == sibling.right.color {
				sibling.color = Red
				node.deficit = false
				if Red == parent.color {
					parent.color = Black
					break
				}
				parent.deficit = true
				node = parent
				continue
			}

			if Black == sibling.right.color {
				// near child red, far child black: make the far child red
				sibling.left.color = Black
				sibling.color = Red
				tree.rotateRight(sibling)
				sibling = parent.right
			}

			// far child red: resolves the deficit
			sibling.color = parent.color
			parent.color = Black
			sibling.right.color = Black
			tree.rotateLeft(parent)
			node.deficit = false
			node = tree.root

		} else {
			sibling := parent.left
			if Red == sibling.color {
				sibling.color = Black
				parent.color = Red
				tree.rotateRight(parent)
				sibling = parent.left
			}
			if tree.sentinel == sibling {
				fault.Panicf("rbtree: delete: deficit under: %v without sibling", parent.value)
			}

			if Black == sibling.left.color && Black == sibling.right.color {
				sibling.color = Red
				node.deficit = false
				if Red == parent.color {
					parent.color = Black
					break
				}
				parent.deficit = true
				node = parent
				continue
			}

			if Black == sibling.left.color {
				sibling.right.color = Black
				sibling.color = Red
				tree.rotateLeft(sibling)
				sibling = parent.left
			}

			sibling.color = parent.color
			parent.color = Black
			sibling.left.color = Black
			tree.rotateRight(parent)
			node.deficit = false
			node = tree.root
		}
	}

	node.deficit = false
	if !node.sentinel {
		node.color = Black
	}
}
