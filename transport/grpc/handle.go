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
	"time"

	"github.com/grpckit/channel/api/transport"
	"github.com/grpckit/channel/completion"
	"github.com/grpckit/channel/connectivity"
	opentracing "github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpcconnectivity "google.golang.org/grpc/connectivity"
)

type channelHandle struct {
	conn   *grpc.ClientConn
	tracer opentracing.Tracer
	logger *zap.Logger
}

var _ transport.Handle = (*channelHandle)(nil)

func (h *channelHandle) Destroy() error {
	return h.conn.Close()
}

func (h *channelHandle) Target() string {
	return h.conn.Target()
}

func (h *channelHandle) CheckConnectivityState(tryToConnect bool) connectivity.State {
	state := h.conn.GetState()
	if tryToConnect {
		h.conn.Connect()
	}
	return fromGRPCState(state)
}

func (h *channelHandle) WatchConnectivityState(lastState connectivity.State, deadline time.Time, tag *completion.Tag) {
	go func() {
		ctx, cancel := context.WithDeadline(context.Background(), deadline)
		defer cancel()
		if h.conn.WaitForStateChange(ctx, toGRPCState(lastState)) {
			tag.Complete(completion.Result{
				StateChanged: true,
				State:        fromGRPCState(h.conn.GetState()),
			})
			return
		}
		// Deadline expired before the state moved.
		tag.Complete(completion.Result{})
	}()
}

func (h *channelHandle) CreateCall(req transport.CallRequest) (transport.CallHandle, error) {
	var parent *Call
	if req.Parent != nil {
		p, ok := req.Parent.(*Call)
		if !ok {
			return nil, errForeignParentCall
		}
		parent = p
	}

	base := context.Background()
	if parent != nil && req.Flags&transport.PropagateCancellation != 0 {
		base = parent.ctx
	}
	deadline := req.Deadline
	if parent != nil && req.Flags&transport.PropagateDeadline != 0 {
		if parentDeadline, ok := parent.ctx.Deadline(); ok && parentDeadline.Before(deadline) {
			deadline = parentDeadline
		}
	}
	if parent != nil &&
		req.Flags&transport.PropagateCensusTracingContext != 0 &&
		req.Flags&transport.PropagateCancellation == 0 {
		// The parent context was not inherited, so carry its span over
		// explicitly.
		if span := opentracing.SpanFromContext(parent.ctx); span != nil {
			base = opentracing.ContextWithSpan(base, span)
		}
	}

	ctx, cancel := context.WithDeadline(base, deadline)
	h.logger.Debug("created grpc call",
		zap.ByteString("method", req.Method),
		zap.Time("deadline", deadline),
	)
	return &Call{
		conn:   h.conn,
		tracer: h.tracer,
		method: string(req.Method),
		host:   string(req.Host),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

func fromGRPCState(state grpcconnectivity.State) connectivity.State {
	switch state {
	case grpcconnectivity.Idle:
		return connectivity.Idle
	case grpcconnectivity.Connecting:
		return connectivity.Connecting
	case grpcconnectivity.Ready:
		return connectivity.Ready
	case grpcconnectivity.TransientFailure:
		return connectivity.TransientFailure
	default:
		return connectivity.Shutdown
	}
}

func toGRPCState(state connectivity.State) grpcconnectivity.State {
	switch state {
	case connectivity.Idle:
		return grpcconnectivity.Idle
	case connectivity.Connecting:
		return grpcconnectivity.Connecting
	case connectivity.Ready:
		return grpcconnectivity.Ready
	case connectivity.TransientFailure:
		return grpcconnectivity.TransientFailure
	default:
		return grpcconnectivity.Shutdown
	}
}
