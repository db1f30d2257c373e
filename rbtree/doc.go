// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced tree with the addition of
// parent pointers and a per-tree sentinel node that stands in for
// every missing child and for the parent of the root
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// The algorithms follow the presentation in Cormen, Leiserson,
// Rivest and Stein, Introduction to Algorithms, chapter 13.
//
// Values are ordered by a caller supplied comparator and are unique:
// inserting a value that compares equal to one already present leaves
// the tree unchanged.  Deleted nodes are kept on a per-tree free list
// and reused, so a node returned by Find must not be used after its
// value has been deleted.
package rbtree
