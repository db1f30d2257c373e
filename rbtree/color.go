// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
)

// Color - the colour of a node
type Color int

// the two colours, new nodes start as Red
const (
	Red Color = iota
	Black
)

// String - name of the colour
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// single character marker used by Print
func (c Color) marker() string {
	if Red == c {
		return "R"
	}
	return "B"
}
