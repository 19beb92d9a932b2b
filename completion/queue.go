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

// Package completion provides the shared completion queue that delivers
// asynchronous transport events back to registered callbacks.
//
// Transports complete tags from their own goroutines; callbacks only ever
// run on the goroutine driving the queue through Next, TryNext, or Run, so
// a host that drives from one goroutine never observes concurrent callback
// invocations.
package completion

import (
	"context"
	"sync"

	"github.com/grpckit/channel/connectivity"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const defaultBufferSize = 128

// Result is the outcome of a connectivity watch: either the state changed
// away from the watched state, or the watch deadline expired first.
// Exactly one Result is delivered per registered tag.
type Result struct {
	// StateChanged is true if the connectivity state moved away from the
	// last-known state before the deadline. False means the deadline
	// expired without a change.
	StateChanged bool

	// State is the connectivity state observed at delivery time. It is
	// only meaningful when StateChanged is true.
	State connectivity.State
}

// Queue is a completion queue. Tags created against a Queue become ready
// when completed and are dispatched, one at a time, by whichever goroutine
// drives Next or Run.
type Queue struct {
	logger *zap.Logger
	ready  chan *Tag
}

// Option configures a Queue.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	bufferSize int
}

// Logger sets a logger for internal queue logging.
//
// The default is to not write any logs.
func Logger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// BufferSize sets how many completed but undispatched tags the queue holds
// before completing transports block.
//
// The default is 128.
func BufferSize(size int) Option {
	return func(o *options) {
		o.bufferSize = size
	}
}

// New returns a new Queue.
func New(opts ...Option) *Queue {
	o := options{
		logger:     zap.NewNop(),
		bufferSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue{
		logger: o.logger,
		ready:  make(chan *Tag, o.bufferSize),
	}
}

var (
	defaultQueueOnce sync.Once
	defaultQueue     *Queue
)

// Default returns the process-wide shared Queue. Channels use this queue
// unless constructed with an explicit one.
func Default() *Queue {
	defaultQueueOnce.Do(func() {
		defaultQueue = New()
	})
	return defaultQueue
}

// NewTag returns a tag whose callback will be invoked with the tag's
// Result once the tag is completed and the queue is next driven.
func (q *Queue) NewTag(callback func(Result)) *Tag {
	return &Tag{
		queue:    q,
		callback: callback,
	}
}

// Next blocks until one completed tag is ready, dispatches its callback on
// the calling goroutine, and returns. It returns the context's error if the
// context expires first.
func (q *Queue) Next(ctx context.Context) error {
	select {
	case tag := <-q.ready:
		tag.dispatch()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryNext dispatches one completed tag if one is ready, without blocking.
// It reports whether a tag was dispatched.
func (q *Queue) TryNext() bool {
	select {
	case tag := <-q.ready:
		tag.dispatch()
		return true
	default:
		return false
	}
}

// Run drives the queue until the context expires, dispatching callbacks
// serially on the calling goroutine. It always returns the context's error.
func (q *Queue) Run(ctx context.Context) error {
	for {
		if err := q.Next(ctx); err != nil {
			return err
		}
	}
}

// Tag is a one-shot completion registration. A Tag is completed by the
// transport exactly once; repeated completions are ignored.
type Tag struct {
	queue    *Queue
	callback func(Result)
	fired    atomic.Bool
	result   Result
}

// Complete marks the tag ready with the given result. Only the first call
// has any effect. Complete may block if the queue's buffer is full.
func (t *Tag) Complete(result Result) {
	if !t.fired.CompareAndSwap(false, true) {
		t.queue.logger.Debug("ignoring duplicate completion of tag")
		return
	}
	t.result = result
	t.queue.ready <- t
}

func (t *Tag) dispatch() {
	t.queue.logger.Debug(
		"dispatching completion",
		zap.Bool("stateChanged", t.result.StateChanged),
		zap.Stringer("state", t.result.State),
	)
	t.callback(t.result)
}
