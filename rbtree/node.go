// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Node - a node in the tree
type Node[T any] struct {
	left     *Node[T] // left sub-tree
	right    *Node[T] // right sub-tree
	up       *Node[T] // points to parent node
	value    T        // ordered by the tree's comparator
	color    Color    // Red or Black
	deficit  bool     // missing one black during delete fixup
	sentinel bool     // only set on the tree's NIL node
	next     *Node[T] // free list link while reclaimed
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Color - current colour of a node
func (p *Node[T]) Color() Color {
	return p.color
}

// IsRed - true for a red node
func (p *Node[T]) IsRed() bool {
	return Red == p.color
}

// IsBlack - true for a black node
func (p *Node[T]) IsBlack() bool {
	return Black == p.color
}

// Left - left child or nil if none
func (p *Node[T]) Left() *Node[T] {
	return p.left.real()
}

// Right - right child or nil if none
func (p *Node[T]) Right() *Node[T] {
	return p.right.real()
}

// Parent - parent node or nil for the root
func (p *Node[T]) Parent() *Node[T] {
	return p.up.real()
}

// Depth - number of edges between the node and the root
func (p *Node[T]) Depth() uint {
	count := uint(0)
	parent := p.up
	for !parent.sentinel {
		count += 1
		parent = parent.up
	}
	return count
}

// convert the sentinel to nil for the public accessors
func (p *Node[T]) real() *Node[T] {
	if p.sentinel {
		return nil
	}
	return p
}

// ChildrenByDepth - all nodes at a specific depth below this node
func (p *Node[T]) ChildrenByDepth(depth uint) []*Node[T] {
	if 0 == depth {
		return []*Node[T]{p}
	}
	nodes := []*Node[T]{}
	if !p.left.sentinel {
		nodes = append(nodes, p.left.ChildrenByDepth(depth-1)...)
	}
	if !p.right.sentinel {
		nodes = append(nodes, p.right.ChildrenByDepth(depth-1)...)
	}
	return nodes
}
