// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	session session
	json    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "rbtree-cli"
	app.Usage = "apply an operation to a red-black tree"
	app.Version = version
	app.HideVersion = true
	app.Metadata = map[string]interface{}{}

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "values, l",
			Value: "",
			Usage: " comma separated `LIST` inserted before the command runs",
		},
		cli.BoolFlag{
			Name:  "strings, s",
			Usage: " order values as strings instead of integers",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " JSON output",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "insert values, duplicates are reported and ignored",
			ArgsUsage: "VALUE...",
			Action:    runInsert,
		},
		{
			Name:      "delete",
			Usage:     "delete values",
			ArgsUsage: "VALUE...",
			Action:    runDelete,
		},
		{
			Name:      "find",
			Usage:     "look up values, fails if any are missing",
			ArgsUsage: "VALUE...",
			Action:    runFind,
		},
		{
			Name:   "check",
			Usage:  "verify the tree invariants",
			Action: runCheck,
		},
		{
			Name:   "print",
			Usage:  "display the tree",
			Action: runPrint,
		},
		{
			Name:   "version",
			Usage:  "display rbtree-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		s := newSession(c.GlobalBool("strings"))

		initial := splitValues(c.GlobalString("values"))
		if verbose {
			fmt.Fprintf(e, "initial values: %q\n", initial)
		}
		if _, err := s.insert(initial); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			session: s,
			json:    c.GlobalBool("json"),
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	return app
}
