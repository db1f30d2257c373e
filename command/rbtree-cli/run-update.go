// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/rbtree"
)

type updateReply struct {
	Results []result `json:"results"`
	Tree    *report  `json:"tree"`
}

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fault.ErrMissingParameters
	}

	results, err := m.session.insert(c.Args())
	if nil != err {
		return err
	}

	return printUpdate(m, results)
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fault.ErrMissingParameters
	}

	results, err := m.session.delete(c.Args())
	if nil != err {
		return err
	}

	return printUpdate(m, results)
}

func runFind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fault.ErrMissingParameters
	}

	results, err := m.session.find(c.Args())
	if nil != err {
		return err
	}

	if m.json {
		if err := printJson(m.w, results); nil != err {
			return err
		}
	} else {
		printResults(m, results)
	}

	for _, r := range results {
		if rbtree.Success.String() != r.Status {
			return fmt.Errorf("%w: %s", fault.ErrNotFoundValue, r.Value)
		}
	}
	return nil
}

func printUpdate(m *metadata, results []result) error {
	tree := m.session.report()

	if m.json {
		return printJson(m.w, &updateReply{
			Results: results,
			Tree:    tree,
		})
	}

	printResults(m, results)
	fmt.Fprintf(m.w, "values: %v\n", tree.Values)
	return nil
}

func printResults(m *metadata, results []result) {
	for _, r := range results {
		fmt.Fprintf(m.w, "%s: %s\n", r.Value, r.Status)
	}
}
