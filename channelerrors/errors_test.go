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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_codeToErrorConstructor = map[Code]func(string, ...interface{}) error{
		CodeInvalidArgument:     InvalidArgumentErrorf,
		CodeInvalidState:        InvalidStateErrorf,
		CodeConstructionFailure: ConstructionFailureErrorf,
	}
	_codeToIsErrorWithCode = map[Code]func(error) bool{
		CodeInvalidArgument:     IsInvalidArgument,
		CodeInvalidState:        IsInvalidState,
		CodeConstructionFailure: IsConstructionFailure,
	}
)

func TestErrorsString(t *testing.T) {
	for code, errorConstructor := range _codeToErrorConstructor {
		t.Run(code.String(), func(t *testing.T) {
			status, ok := errorConstructor("hello %d", 1).(*Status)
			require.True(t, ok)
			assert.Equal(t, fmt.Sprintf("code:%s message:hello 1", code.String()), status.Error())
		})
	}
}

func TestIsErrorWithCode(t *testing.T) {
	for code, isErrorWithCode := range _codeToIsErrorWithCode {
		t.Run(code.String(), func(t *testing.T) {
			constructor, ok := _codeToErrorConstructor[code]
			require.True(t, ok)
			assert.True(t, isErrorWithCode(constructor("oops")))
			assert.False(t, isErrorWithCode(errors.New("oops")))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeOK, ErrorCode(nil))
	assert.Equal(t, CodeUnknown, ErrorCode(errors.New("plain")))
	assert.Equal(t, CodeInvalidState, ErrorCode(InvalidStateErrorf("closed")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, "plain", ErrorMessage(errors.New("plain")))
	assert.Equal(t, "closed", ErrorMessage(InvalidStateErrorf("closed")))
}

func TestFromErrorWrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", InvalidArgumentErrorf("bad key"))
	assert.Equal(t, CodeInvalidArgument, FromError(err).Code())
	assert.True(t, IsInvalidArgument(err))
}

func TestFromErrorUnknownUnwraps(t *testing.T) {
	inner := errors.New("inner")
	status := FromError(inner)
	require.Equal(t, CodeUnknown, status.Code())
	assert.Equal(t, inner, errors.Unwrap(status))
}

func TestNewfWithCodeOK(t *testing.T) {
	assert.Nil(t, Newf(CodeOK, "nope"))
}
