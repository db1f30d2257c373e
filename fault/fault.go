// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBlackHeightMismatch  = InvalidError("black height mismatch")
	ErrConfigurationNoTable = InvalidError("configuration did not return a table")
	ErrCountMismatch        = InvalidError("node count mismatch")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidValue         = InvalidError("invalid value")
	ErrMissingParameters    = InvalidError("missing parameters")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundValue        = NotFoundError("value not found")
	ErrOrderViolation       = InvalidError("values out of order")
	ErrParentLinkBroken     = InvalidError("parent link broken")
	ErrRedRedEdge           = InvalidError("red node has red child")
	ErrRedRoot              = InvalidError("root node is red")
	ErrScriptCheckFailed    = ProcessError("script check failed")
	ErrSentinelCorrupt      = InvalidError("sentinel node corrupt")
	ErrWatcherStopped       = ProcessError("file watcher stopped")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
