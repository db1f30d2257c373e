// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.session.check(); nil != err {
		return err
	}

	tree := m.session.report()

	if m.json {
		return printJson(m.w, tree)
	}

	fmt.Fprintf(m.w, "ok  count: %d  black height: %d\n", tree.Count, tree.BlackHeight)
	return nil
}

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	height := m.session.fprint(m.w)
	if m.verbose {
		fmt.Fprintf(m.e, "height: %d\n", height)
	}
	return nil
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
