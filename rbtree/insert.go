// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/redblack/fault"
)

// Insert - insert a new value into the tree
//
// returns true if the value was added, false if an equal value is
// already present in which case the tree is unchanged
func (tree *Tree[T]) Insert(value T) bool {
	s := tree.sentinel

	parent := s
	p := tree.root
	c := 0
	for s != p {
		parent = p
		c = tree.compare(value, p.value)
		switch {
		case c < 0: // value < p.value
			p = p.left
		case c > 0: // value > p.value
			p = p.right
		default: // duplicate
			return false
		}
	}

	node := tree.newNode(value)
	node.up = parent
	switch {
	case s == parent:
		tree.root = node
	case c < 0:
		parent.left = node
	default:
		parent.right = node
	}
	tree.count += 1

	if s == parent {
		node.color = Black
		return true
	}

	// red child of the black root
	if s == parent.up {
		return true
	}

	tree.insertFixup(node)
	return true
}

// restore the red-black properties after adding a red node
func (tree *Tree[T]) insertFixup(node *Node[T]) {
	for Red == node.up.color {
		parent := node.up
		grandparent := parent.up
		if tree.sentinel == grandparent {
			fault.Panicf("rbtree: insert: red node: %v has no parent", parent.value)
		}

		if parent == grandparent.left {
			uncle := grandparent.right
			if Red == uncle.color {
				// red uncle: push the violation two levels up
				parent.color = Black
				uncle.color = Black
				grandparent.color = Red
				node = grandparent
			} else {
				if node == parent.right {
					// inner grandchild: straighten into an outer one
					tree.rotateLeft(parent)
					node, parent = parent, node
				}
				// outer grandchild: parent is now black so the loop ends
				parent.color = Black
				grandparent.color = Red
				tree.rotateRight(grandparent)
			}
		} else {
			uncle := grandparent.left
			if Red == uncle.color {
				parent.color = Black
				uncle.color = Black
				grandparent.color = Red
				node = grandparent
			} else {
				if node == parent.left {
					tree.rotateRight(parent)
					node, parent = parent, node
				}
				parent.color = Black
				grandparent.color = Red
				tree.rotateLeft(grandparent)
			}
		}

		if tree.root == node {
			break
		}
	}
	tree.root.color = Black
}
