// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
)

// Status - outcome of an operation whose failure is an expected result
type Status int

// possible status values
const (
	Success  Status = 0
	NotFound Status = -1
	Fail     Status = 1
)

// String - the status as text
func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case NotFound:
		return "NOT_FOUND"
	case Fail:
		return "FAIL"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
