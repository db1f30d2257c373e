// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// First - return the node with the lowest value, nil if empty
func (tree *Tree[T]) First() *Node[T] {
	if tree.IsEmpty() {
		return nil
	}
	return tree.minimum(tree.root)
}

// Last - return the node with the highest value, nil if empty
func (tree *Tree[T]) Last() *Node[T] {
	if tree.IsEmpty() {
		return nil
	}
	return tree.maximum(tree.root)
}

// Walk - call f for each value in ascending order until it returns false
//
// the tree must not be modified by f
func (tree *Tree[T]) Walk(f func(value T) bool) {
	tree.walk(tree.root, f)
}

// internal: in-order traversal, false if stopped early
func (tree *Tree[T]) walk(p *Node[T], f func(value T) bool) bool {
	if tree.sentinel == p {
		return true
	}
	if !tree.walk(p.left, f) {
		return false
	}
	if !f(p.value) {
		return false
	}
	return tree.walk(p.right, f)
}

// Values - all values in ascending order
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.count)
	tree.Walk(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}
