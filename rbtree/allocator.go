// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/redblack/fault"
)

// allocate a new red node, reuses reclaimed nodes if any are available
func (tree *Tree[T]) newNode(value T) *Node[T] {
	s := tree.sentinel
	p := tree.pool
	if nil == p {
		if 0 != tree.freeNodes {
			fault.Panic("rbtree: node pool corrupt")
		}
		return &Node[T]{
			left:  s,
			right: s,
			up:    s,
			value: value,
			color: Red,
		}
	}
	tree.pool = p.next
	tree.freeNodes -= 1

	p.next = nil // ensure freelist pointer is cleared
	p.left = s
	p.right = s
	p.up = s
	p.value = value
	p.color = Red
	p.deficit = false
	return p
}

// reclaim a detached node and keep it in the pool
//
// a stale handle to the node reads as a detached black leaf
func (tree *Tree[T]) freeNode(node *Node[T]) {
	var zero T

	s := tree.sentinel
	node.left = s
	node.right = s
	node.up = s
	node.value = zero
	node.color = Black
	node.deficit = false

	node.next = tree.pool
	tree.pool = node
	tree.freeNodes += 1
}
