// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/rbtree"
)

// insert of a value that is already present, the tree is unchanged
const duplicateStatus = "DUPLICATE"

// result of one operation on one value
type result struct {
	Value  string `json:"value"`
	Status string `json:"status"`
}

// state of the tree after a command
type report struct {
	Count       int      `json:"count"`
	BlackHeight int      `json:"blackHeight"`
	Values      []string `json:"values"`
}

// session - a tree of some element type driven by text arguments
type session interface {
	insert(arguments []string) ([]result, error)
	delete(arguments []string) ([]result, error)
	find(arguments []string) ([]result, error)
	check() error
	fprint(w io.Writer) int
	report() *report
}

type treeSession[T any] struct {
	tree  *rbtree.Tree[T]
	parse func(string) (T, error)
}

func newSession(useStrings bool) session {
	if useStrings {
		return &treeSession[string]{
			tree:  rbtree.New(rbtree.Compare[string]),
			parse: parseString,
		}
	}
	return &treeSession[int]{
		tree:  rbtree.New(rbtree.Compare[int]),
		parse: parseInt,
	}
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, fmt.Errorf("%w: %q", fault.ErrInvalidValue, s)
	}
	return n, nil
}

// all arguments are parsed before the tree is touched
func (s *treeSession[T]) parseAll(arguments []string) ([]T, error) {
	values := make([]T, 0, len(arguments))
	for _, a := range arguments {
		v, err := s.parse(a)
		if nil != err {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (s *treeSession[T]) insert(arguments []string) ([]result, error) {
	values, err := s.parseAll(arguments)
	if nil != err {
		return nil, err
	}
	results := make([]result, 0, len(values))
	for _, v := range values {
		status := duplicateStatus
		if s.tree.Insert(v) {
			status = rbtree.Success.String()
		}
		results = append(results, result{Value: fmt.Sprint(v), Status: status})
	}
	return results, nil
}

func (s *treeSession[T]) delete(arguments []string) ([]result, error) {
	values, err := s.parseAll(arguments)
	if nil != err {
		return nil, err
	}
	results := make([]result, 0, len(values))
	for _, v := range values {
		status := s.tree.Delete(v)
		results = append(results, result{Value: fmt.Sprint(v), Status: status.String()})
	}
	return results, nil
}

func (s *treeSession[T]) find(arguments []string) ([]result, error) {
	values, err := s.parseAll(arguments)
	if nil != err {
		return nil, err
	}
	results := make([]result, 0, len(values))
	for _, v := range values {
		_, status := s.tree.Find(v)
		results = append(results, result{Value: fmt.Sprint(v), Status: status.String()})
	}
	return results, nil
}

func (s *treeSession[T]) check() error {
	return s.tree.Check()
}

func (s *treeSession[T]) fprint(w io.Writer) int {
	return s.tree.Fprint(w)
}

func (s *treeSession[T]) report() *report {
	values := make([]string, 0, s.tree.Count())
	s.tree.Walk(func(v T) bool {
		values = append(values, fmt.Sprint(v))
		return true
	})
	return &report{
		Count:       s.tree.Count(),
		BlackHeight: s.tree.BlackHeight(),
		Values:      values,
	}
}

// split a comma separated list, ignoring blank items
func splitValues(list string) []string {
	items := strings.Split(list, ",")
	values := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if "" != item {
			values = append(values, item)
		}
	}
	return values
}
