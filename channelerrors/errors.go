// Copyright (c) 2025 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package channelerrors provides the error model for the channel library.
// Every error surfaced by the library carries one of a small set of codes
// that callers can branch on without string matching.
package channelerrors

import (
	"bytes"
	"errors"
	"fmt"
)

// Status is an error with an associated Code.
type Status struct {
	code Code
	err  error
}

// Newf returns a new Status.
//
// The Code should never be CodeOK; if it is, this returns nil.
func Newf(code Code, format string, args ...interface{}) *Status {
	if code == CodeOK {
		return nil
	}

	var err error
	if len(args) == 0 {
		err = errors.New(format)
	} else {
		err = fmt.Errorf(format, args...)
	}

	return &Status{
		code: code,
		err:  err,
	}
}

// FromError returns the Status for the provided error.
//
// If the error is nil, this returns nil. If the error is already a Status
// (possibly wrapped), that Status is returned. Otherwise the error is
// wrapped with CodeUnknown.
func FromError(err error) *Status {
	if err == nil {
		return nil
	}
	var st *Status
	if errors.As(err, &st) {
		return st
	}
	return &Status{
		code: CodeUnknown,
		err:  &wrapError{err: err},
	}
}

// Code returns the error code for this Status.
func (s *Status) Code() Code {
	if s == nil {
		return CodeOK
	}
	return s.code
}

// Message returns the error message for this Status.
func (s *Status) Message() string {
	if s == nil {
		return ""
	}
	return s.err.Error()
}

// Error implements the error interface.
func (s *Status) Error() string {
	buffer := bytes.NewBuffer(nil)
	_, _ = buffer.WriteString(`code:`)
	_, _ = buffer.WriteString(s.code.String())
	if s.err != nil && s.err.Error() != "" {
		_, _ = buffer.WriteString(` message:`)
		_, _ = buffer.WriteString(s.err.Error())
	}
	return buffer.String()
}

// Unwrap supports errors.Unwrap.
func (s *Status) Unwrap() error {
	if s == nil {
		return nil
	}
	return errors.Unwrap(s.err)
}

type wrapError struct {
	err error
}

func (e *wrapError) Error() string {
	if e == nil || e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *wrapError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// InvalidArgumentErrorf returns a new Status with code CodeInvalidArgument.
func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return Newf(CodeInvalidArgument, format, args...)
}

// InvalidStateErrorf returns a new Status with code CodeInvalidState.
func InvalidStateErrorf(format string, args ...interface{}) error {
	return Newf(CodeInvalidState, format, args...)
}

// ConstructionFailureErrorf returns a new Status with code
// CodeConstructionFailure.
func ConstructionFailureErrorf(format string, args ...interface{}) error {
	return Newf(CodeConstructionFailure, format, args...)
}

// IsInvalidArgument returns true if the error has code CodeInvalidArgument.
func IsInvalidArgument(err error) bool {
	return FromError(err).Code() == CodeInvalidArgument
}

// IsInvalidState returns true if the error has code CodeInvalidState.
func IsInvalidState(err error) bool {
	return FromError(err).Code() == CodeInvalidState
}

// IsConstructionFailure returns true if the error has code
// CodeConstructionFailure.
func IsConstructionFailure(err error) bool {
	return FromError(err).Code() == CodeConstructionFailure
}

// ErrorCode returns the Code for the given error, CodeOK if the error is
// nil, and CodeUnknown if the error is not produced by this package.
func ErrorCode(err error) Code {
	return FromError(err).Code()
}

// ErrorMessage returns the message for the given error, or "" if the error
// is nil.
func ErrorMessage(err error) string {
	return FromError(err).Message()
}
