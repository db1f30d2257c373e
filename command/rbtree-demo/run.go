// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/redblack/rbtree"
	"github.com/bitmark-inc/redblack/script"
)

// echo every step to a writer before passing it on
type consoleObserver struct {
	w    io.Writer
	next script.Observer
}

func (o *consoleObserver) Inserted(value int, added bool) {
	if added {
		fmt.Fprintf(o.w, "insert: %d\n", value)
	} else {
		fmt.Fprintf(o.w, "insert: %d  (duplicate)\n", value)
	}
	o.next.Inserted(value, added)
}

func (o *consoleObserver) Found(value int, status rbtree.Status) {
	fmt.Fprintf(o.w, "find:   %d  %s\n", value, status)
	o.next.Found(value, status)
}

func (o *consoleObserver) Deleted(value int, status rbtree.Status) {
	fmt.Fprintf(o.w, "delete: %d  %s\n", value, status)
	o.next.Deleted(value, status)
}

func (o *consoleObserver) Checked(err error) {
	if nil != err {
		fmt.Fprintf(o.w, "check:  %s\n", err)
	}
	o.next.Checked(err)
}

// apply one script to a new tree and write the results
func runScript(w io.Writer, s *script.Script, observer script.Observer) (*script.Summary, error) {
	tree := rbtree.New(rbtree.Compare[int])

	summary, err := script.Run(tree, s, observer)
	if nil != err {
		return summary, err
	}

	fmt.Fprintf(w, "added: %d  duplicates: %d\n", summary.Added, summary.Duplicates)
	fmt.Fprintf(w, "found: %d  missing: %d\n", summary.Found, summary.Missing)
	fmt.Fprintf(w, "deleted: %d  failed: %d\n", summary.Deleted, summary.Failed)
	fmt.Fprintf(w, "count: %d  black height: %d\n", summary.Count, tree.BlackHeight())
	fmt.Fprintf(w, "values: %v\n", summary.Values)

	if s.Print {
		tree.Fprint(w)
	}
	return summary, nil
}
