// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Red-black tree demonstration program
//
// This program reads a Lua configuration holding a script of insert,
// find and delete operations, applies it to a fresh tree and reports
// the result.  With --watch the script is re-run each time the
// configuration file is written.
package main
