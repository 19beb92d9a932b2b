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

package channelerrors

import (
	"fmt"
	"strconv"
)

const (
	// CodeOK means no error; returned on success.
	CodeOK Code = 0

	// CodeUnknown means an unknown error. Errors raised by APIs that do
	// not return enough error information may be converted to this error.
	CodeUnknown Code = 1

	// CodeInvalidArgument means the caller supplied an argument of the
	// wrong shape or kind. This is always detected synchronously, before
	// any transport resource is touched.
	CodeInvalidArgument Code = 2

	// CodeInvalidState means the operation was attempted on a channel
	// that has already been closed.
	CodeInvalidState Code = 3

	// CodeConstructionFailure means the underlying transport refused to
	// create the channel or call. No partial object is returned alongside
	// this code.
	CodeConstructionFailure Code = 4
)

// Code represents the kind of error that occurred.
type Code int

var (
	codeToString = map[Code]string{
		CodeOK:                  "ok",
		CodeUnknown:             "unknown",
		CodeInvalidArgument:     "invalid-argument",
		CodeInvalidState:        "invalid-state",
		CodeConstructionFailure: "construction-failure",
	}
	stringToCode = map[string]Code{
		"ok":                   CodeOK,
		"unknown":              CodeUnknown,
		"invalid-argument":     CodeInvalidArgument,
		"invalid-state":        CodeInvalidState,
		"construction-failure": CodeConstructionFailure,
	}
)

// String returns the string representation of the Code.
func (c Code) String() string {
	s, ok := codeToString[c]
	if ok {
		return s
	}
	return strconv.Itoa(int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	s, ok := codeToString[c]
	if !ok {
		return nil, fmt.Errorf("unknown code: %d", int(c))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	i, ok := stringToCode[string(text)]
	if !ok {
		return fmt.Errorf("unknown code string: %s", string(text))
	}
	*c = i
	return nil
}
