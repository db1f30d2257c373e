// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error classes and panic reporting
//
// Errors are single typed instances so callers can compare them
// directly or classify a wrapped error with the IsErrXxx functions.
// Broken tree invariants are reported with Panicf, which logs to the
// PANIC channel before panicking.
package fault
