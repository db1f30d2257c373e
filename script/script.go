// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"

	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/rbtree"
)

// Script - operations to apply to a tree
type Script struct {
	Insert []int `gluamapper:"insert" json:"insert"`
	Find   []int `gluamapper:"find" json:"find"`
	Delete []int `gluamapper:"delete" json:"delete"`
	Check  bool  `gluamapper:"check" json:"check"`
	Print  bool  `gluamapper:"print" json:"print"`
}

// Observer - receives the result of every step
type Observer interface {
	Inserted(value int, added bool)
	Found(value int, status rbtree.Status)
	Deleted(value int, status rbtree.Status)
	Checked(err error)
}

// Summary - totals for a completed run
type Summary struct {
	Added      int   `json:"added"`
	Duplicates int   `json:"duplicates"`
	Found      int   `json:"found"`
	Missing    int   `json:"missing"`
	Deleted    int   `json:"deleted"`
	Failed     int   `json:"failed"`
	Count      int   `json:"count"`
	Values     []int `json:"values"`
}

// Run - apply the script to a tree
//
// when the script's Check is set the tree is verified after every
// insert and delete, and the first failure stops the run; the error
// then wraps both fault.ErrScriptCheckFailed and the check error, and
// the summary describes the tree at that point
func Run(tree *rbtree.Tree[int], s *Script, observer Observer) (*Summary, error) {
	if nil == tree || nil == s || nil == observer {
		return nil, fault.ErrMissingParameters
	}

	summary := &Summary{}

	for i, value := range s.Insert {
		added := tree.Insert(value)
		observer.Inserted(value, added)
		if added {
			summary.Added += 1
		} else {
			summary.Duplicates += 1
		}
		if err := check(tree, s, observer); nil != err {
			summary.fill(tree)
			return summary, fmt.Errorf("%w: insert[%d]: %d: %w", fault.ErrScriptCheckFailed, i, value, err)
		}
	}

	for _, value := range s.Find {
		_, status := tree.Find(value)
		observer.Found(value, status)
		if rbtree.Success == status {
			summary.Found += 1
		} else {
			summary.Missing += 1
		}
	}

	for i, value := range s.Delete {
		status := tree.Delete(value)
		observer.Deleted(value, status)
		if rbtree.Success == status {
			summary.Deleted += 1
		} else {
			summary.Failed += 1
		}
		if err := check(tree, s, observer); nil != err {
			summary.fill(tree)
			return summary, fmt.Errorf("%w: delete[%d]: %d: %w", fault.ErrScriptCheckFailed, i, value, err)
		}
	}

	summary.fill(tree)
	return summary, nil
}

// record the final state of the tree
func (summary *Summary) fill(tree *rbtree.Tree[int]) {
	summary.Count = tree.Count()
	summary.Values = tree.Values()
}

func check(tree *rbtree.Tree[int], s *Script, observer Observer) error {
	if !s.Check {
		return nil
	}
	err := tree.Check()
	observer.Checked(err)
	return err
}
