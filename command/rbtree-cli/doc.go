// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Red-black tree command line tool
//
// Each invocation builds a tree from the --values list and then
// applies one command to it, e.g.
//
//	rbtree-cli --values=14,7,17,12 delete 7
//	rbtree-cli --strings --values=kiwi,fig --json find fig apple
package main
