// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Find - find a specific value
//
// returns the node and Success, or nil and NotFound
func (tree *Tree[T]) Find(value T) (*Node[T], Status) {
	p := tree.find(value)
	if tree.sentinel == p {
		return nil, NotFound
	}
	return p, Success
}

// Contains - true if the value is in the tree
func (tree *Tree[T]) Contains(value T) bool {
	return tree.sentinel != tree.find(value)
}

// internal: returns the sentinel if not found
func (tree *Tree[T]) find(value T) *Node[T] {
	p := tree.root
	for tree.sentinel != p {
		c := tree.compare(value, p.value)
		switch {
		case c < 0: // value < p.value
			p = p.left
		case c > 0: // value > p.value
			p = p.right
		default:
			return p
		}
	}
	return p
}
