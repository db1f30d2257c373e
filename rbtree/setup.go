// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/redblack/fault"
)

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root     *Node[T]
	sentinel *Node[T]
	compare  Comparator[T]
	count    int

	pool      *Node[T] // linked list of reclaimed nodes
	freeNodes int      // number of nodes in the pool
}

// New - create an initially empty tree ordered by compare
func New[T any](compare Comparator[T]) *Tree[T] {
	if nil == compare {
		fault.Panic("rbtree: comparator is nil")
	}

	s := &Node[T]{
		color:    Black,
		sentinel: true,
	}
	s.left = s
	s.right = s
	s.up = s

	return &Tree[T]{
		root:     s,
		sentinel: s,
		compare:  compare,
		count:    0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return tree.sentinel == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree, nil if empty
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root.real()
}

// Clear - remove all nodes, the free list is also released
func (tree *Tree[T]) Clear() {
	tree.root = tree.sentinel
	tree.count = 0
	tree.pool = nil
	tree.freeNodes = 0
}
