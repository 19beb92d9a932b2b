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

package memory

import (
	"time"

	"github.com/grpckit/channel/api/transport"
	"go.uber.org/atomic"
)

// Call is an in-memory transport call. It records what it was created with
// and stays valid independently of its originating handle.
type Call struct {
	method   []byte
	host     []byte
	deadline time.Time
	parent   transport.CallHandle
	flags    uint32
	canceled atomic.Bool
}

var _ transport.CallHandle = (*Call)(nil)

func newCall(req transport.CallRequest) *Call {
	// Copy the byte slices: the caller may reuse its buffers, and the
	// slice length is the authoritative size.
	method := make([]byte, len(req.Method))
	copy(method, req.Method)
	var host []byte
	if req.Host != nil {
		host = make([]byte, len(req.Host))
		copy(host, req.Host)
	}
	return &Call{
		method:   method,
		host:     host,
		deadline: req.Deadline,
		parent:   req.Parent,
		flags:    req.Flags,
	}
}

// Cancel implements transport.CallHandle.
func (c *Call) Cancel() {
	c.canceled.Store(true)
}

// Canceled reports whether Cancel has been called.
func (c *Call) Canceled() bool {
	return c.canceled.Load()
}

// Method returns a copy of the full method name bytes.
func (c *Call) Method() []byte {
	method := make([]byte, len(c.method))
	copy(method, c.method)
	return method
}

// Host returns a copy of the host override bytes, or nil if the call has
// no override.
func (c *Call) Host() []byte {
	if c.host == nil {
		return nil
	}
	host := make([]byte, len(c.host))
	copy(host, c.host)
	return host
}

// Deadline returns the call's absolute deadline.
func (c *Call) Deadline() time.Time {
	return c.deadline
}

// Parent returns the parent call the call was created with, if any.
func (c *Call) Parent() transport.CallHandle {
	return c.parent
}

// Flags returns the propagation flags the call was created with.
func (c *Call) Flags() uint32 {
	return c.flags
}
