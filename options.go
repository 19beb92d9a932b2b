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

import (
	"sync"

	"github.com/grpckit/channel/api/transport"
	"github.com/grpckit/channel/completion"
	grpctransport "github.com/grpckit/channel/transport/grpc"
	"go.uber.org/zap"
)

// Option configures a Channel at construction time.
type Option func(*options)

type options struct {
	transport transport.Transport
	queue     *completion.Queue
	logger    *zap.Logger
}

// Transport sets the transport backing the Channel.
//
// The default is a process-shared gRPC transport.
func Transport(t transport.Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// CompletionQueue sets the completion queue that delivers the Channel's
// asynchronous notifications.
//
// The default is the process-shared completion.Default() queue.
func CompletionQueue(queue *completion.Queue) Option {
	return func(o *options) {
		o.queue = queue
	}
}

// Logger sets a logger to use for internal logging.
//
// The default is to not write any logs.
func Logger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

var (
	defaultTransportOnce sync.Once
	defaultTransport     transport.Transport
)

func sharedDefaultTransport() transport.Transport {
	defaultTransportOnce.Do(func() {
		defaultTransport = grpctransport.NewTransport()
	})
	return defaultTransport
}

func applyOptions(opts []Option) options {
	o := options{
		queue:  completion.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.transport == nil {
		o.transport = sharedDefaultTransport()
	}
	return o
}
