// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package rename

import (
	"errors"
	"fmt"
)

// Code classifies a rejected rename.
type Code string

const (
	CodeIllegalIdentifier Code = "ILLEGAL_IDENTIFIER"
	CodeNameCollision     Code = "NAME_COLLISION"
	CodeReservedWord      Code = "RESERVED_WORD"
	CodeEmptyName         Code = "EMPTY_NAME"
	CodeTooLong           Code = "TOO_LONG"
	CodeUnsupportedOwner  Code = "UNSUPPORTED_OWNER"
	CodeNotFlagged        Code = "NOT_FLAGGED"
)

// Error is a rename rejected by validation.
type Error struct {
	Code Code   // Error classification code
	Name string // Candidate name
	Msg  string // Human-readable reason
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("%s: %q: %s", e.Code, e.Name, e.Msg)
}

// Is matches errors with the same code, so that errors.Is(err,
// ErrNameCollision) holds for any collision.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrIllegalIdentifier = &Error{Code: CodeIllegalIdentifier, Msg: "not a legal C++ identifier"}
	ErrNameCollision     = &Error{Code: CodeNameCollision, Msg: "name is already in use"}
	ErrReservedWord      = &Error{Code: CodeReservedWord, Msg: "name is a reserved word"}
	ErrEmptyName         = &Error{Code: CodeEmptyName, Msg: "name cannot be empty"}
	ErrTooLong           = &Error{Code: CodeTooLong, Msg: "name is too long"}
	ErrUnsupportedOwner  = &Error{Code: CodeUnsupportedOwner, Msg: "owner has no naming authority"}
	ErrNotFlagged        = &Error{Code: CodeNotFlagged, Msg: "item has no illegal name to rename"}
)

func newError(sentinel *Error, name, format string, args ...any) error {
	msg := sentinel.Msg
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Code: sentinel.Code, Name: name, Msg: msg}
}

// CodeOf returns the code of err, or "" when err is not a rename error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Reason returns the human-readable reason of err, suitable for display
// next to the edited name.
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
