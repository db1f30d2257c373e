// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - run a list of tree operations read from a
// configuration file and report each step to an observer
//
// a script inserts all of its values, then looks up the find values
// and finally deletes the delete values, in the order given
package script
