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

package channel

import "github.com/grpckit/channel/api/transport"

// Call is one RPC invocation issued over a Channel. Once created it shares
// no mutable state with the Channel and stays valid after the Channel is
// closed.
type Call struct {
	handle transport.CallHandle
}

// Cancel abandons the call. It is safe to call more than once.
func (c *Call) Cancel() {
	c.handle.Cancel()
}

// TransportCall returns the underlying transport-level call for
// transport-specific operations, such as invoking it.
func (c *Call) TransportCall() transport.CallHandle {
	return c.handle
}

// CallOption configures CreateCall.
type CallOption func(*callOptions)

type callOptions struct {
	host      string
	parent    *Call
	parentSet bool
	flags     uint32
}

// WithHostOverride overrides the destination authority for this call.
func WithHostOverride(host string) CallOption {
	return func(o *callOptions) {
		o.host = host
	}
}

// WithParentCall propagates deadline, cancellation, and tracing context
// from the given call, subject to the propagation flags.
func WithParentCall(parent *Call) CallOption {
	return func(o *callOptions) {
		o.parent = parent
		o.parentSet = true
	}
}

// WithPropagationFlags selects which context the call inherits from its
// parent call.
//
// The default is transport.PropagateDefaults.
func WithPropagationFlags(flags uint32) CallOption {
	return func(o *callOptions) {
		o.flags = flags
	}
}
