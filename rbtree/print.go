// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree on
// stdout, returns the height of the tree
func (tree *Tree[T]) Print() int {
	return tree.Fprint(os.Stdout)
}

// Fprint - write an ASCII graphic representation of the tree
//
// the right sub-tree is above a node and the left sub-tree below,
// each node is followed by its colour R or B
func (tree *Tree[T]) Fprint(w io.Writer) int {
	return tree.printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[T]) printTree(w io.Writer, p *Node[T], prefix string, br branch) int {
	if tree.sentinel == p {
		return 0
	}
	rd := 0
	ld := 0
	if tree.sentinel != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v %s\n", p.value, p.color.marker())
	if tree.sentinel != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
