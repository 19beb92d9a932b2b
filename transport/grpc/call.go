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

package grpctransport

import (
	"context"
	"errors"

	"github.com/grpckit/channel/api/transport"
	opentracing "github.com/opentracing/opentracing-go"
	"google.golang.org/grpc"
)

var errForeignParentCall = errors.New("parent call was not created by the grpc transport")

// Call is a grpc-backed transport call. Its context carries the deadline
// and any propagated cancellation or tracing span from a parent call; the
// call stays valid after the channel that created it is closed.
type Call struct {
	conn   *grpc.ClientConn
	tracer opentracing.Tracer
	method string
	host   string
	ctx    context.Context
	cancel context.CancelFunc
}

var _ transport.CallHandle = (*Call)(nil)

// Cancel implements transport.CallHandle.
func (c *Call) Cancel() {
	c.cancel()
}

// Context returns the call's context.
func (c *Call) Context() context.Context {
	return c.ctx
}

// Method returns the full method name of the call.
func (c *Call) Method() string {
	return c.method
}

// Host returns the recorded authority override, or "" if none was given.
// grpc-go sets the authority per connection, not per call, so the
// override takes effect only through the grpc.default_authority channel
// argument at dial time.
func (c *Call) Host() string {
	return c.host
}

// Invoke performs a unary RPC with the call's method, deadline, and
// propagated context. When the transport was built with a Tracer, Invoke
// runs inside a client span, parented to any propagated span.
func (c *Call) Invoke(args interface{}, reply interface{}, opts ...grpc.CallOption) error {
	ctx := c.ctx
	if c.tracer != nil {
		var spanOptions []opentracing.StartSpanOption
		if parentSpan := opentracing.SpanFromContext(ctx); parentSpan != nil {
			spanOptions = append(spanOptions, opentracing.ChildOf(parentSpan.Context()))
		}
		span := c.tracer.StartSpan(c.method, spanOptions...)
		defer span.Finish()
		ctx = opentracing.ContextWithSpan(ctx, span)
	}
	return c.conn.Invoke(ctx, c.method, args, reply, opts...)
}
