// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/redblack/rbtree"
)

// LogObserver - report each step to a logger channel
type LogObserver struct {
	log *logger.L
}

// NewLogObserver - create an observer writing to log
func NewLogObserver(log *logger.L) *LogObserver {
	return &LogObserver{
		log: log,
	}
}

// Inserted - result of an insert
func (o *LogObserver) Inserted(value int, added bool) {
	if added {
		o.log.Debugf("insert: %d", value)
	} else {
		o.log.Infof("insert: %d duplicate ignored", value)
	}
}

// Found - result of a lookup
func (o *LogObserver) Found(value int, status rbtree.Status) {
	o.log.Infof("find: %d  status: %s", value, status)
}

// Deleted - result of a delete
func (o *LogObserver) Deleted(value int, status rbtree.Status) {
	if rbtree.Success == status {
		o.log.Debugf("delete: %d", value)
	} else {
		o.log.Warnf("delete: %d  status: %s", value, status)
	}
}

// Checked - result of an invariant check
func (o *LogObserver) Checked(err error) {
	if nil != err {
		o.log.Errorf("check failed: %s", err)
	}
}
