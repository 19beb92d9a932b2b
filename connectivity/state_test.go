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

package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateOrdinals(t *testing.T) {
	// Callers compare states by ordinal; the numeric values are frozen.
	assert.Equal(t, 0, int(Idle))
	assert.Equal(t, 1, int(Connecting))
	assert.Equal(t, 2, int(Ready))
	assert.Equal(t, 3, int(TransientFailure))
	assert.Equal(t, 4, int(Shutdown))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "IDLE", Idle.String())
	assert.Equal(t, "CONNECTING", Connecting.String())
	assert.Equal(t, "READY", Ready.String())
	assert.Equal(t, "TRANSIENT_FAILURE", TransientFailure.String())
	assert.Equal(t, "SHUTDOWN", Shutdown.String())
	assert.Equal(t, "INVALID_STATE", State(42).String())
}

func TestStateValid(t *testing.T) {
	for _, state := range []State{Idle, Connecting, Ready, TransientFailure, Shutdown} {
		assert.True(t, state.Valid(), state.String())
	}
	assert.False(t, State(-1).Valid())
	assert.False(t, State(5).Valid())
}
