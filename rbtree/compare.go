// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"golang.org/x/exp/constraints"
)

// Comparator - three way ordering of two values
//
// returns negative if a < b, zero if a == b and positive if a > b; it
// must define a total order and must not change for the lifetime of a
// tree
type Comparator[T any] func(a T, b T) int

// Compare - comparator for the built-in ordered types
//
// Note: floating point NaN is not ordered and must not be stored
func Compare[T constraints.Ordered](a T, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}
