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
	"time"

	"github.com/grpckit/channel/api/transport"
	"github.com/grpckit/channel/channelerrors"
	"github.com/grpckit/channel/completion"
	"github.com/grpckit/channel/connectivity"
	"go.uber.org/zap"
)

// Channel is a logical connection to a single RPC destination, multiplexing
// many calls over one transport-level channel.
//
// A Channel owns its transport handle exclusively. Close releases the
// handle exactly once; calls created before Close remain valid afterwards,
// per the transport contract.
type Channel struct {
	lock   sync.Mutex
	handle transport.Handle // nil once closed
	queue  *completion.Queue
	logger *zap.Logger
}

// New creates a Channel to the given target.
//
// Nil credentials select an insecure transport channel. The raw argument
// mapping is built into an argument set with BuildArgs and released after
// the transport channel is created; it is not retained.
func New(target string, creds transport.Credentials, rawArgs map[string]interface{}, opts ...Option) (*Channel, error) {
	if target == "" {
		return nil, channelerrors.InvalidArgumentErrorf(
			"channel target must be a non-empty string")
	}
	options := applyOptions(opts)

	args, err := BuildArgs(rawArgs)
	if err != nil {
		return nil, err
	}

	var handle transport.Handle
	if creds == nil {
		handle, err = options.transport.CreateInsecureChannel(target, args)
	} else {
		handle, err = options.transport.CreateSecureChannel(creds, target, args)
	}
	if err != nil {
		return nil, channelerrors.ConstructionFailureErrorf(
			"failed to create channel to %q: %v", target, err)
	}

	options.logger.Debug("created channel",
		zap.String("target", target),
		zap.Bool("secure", creds != nil),
	)
	return &Channel{
		handle: handle,
		queue:  options.queue,
		logger: options.logger,
	}, nil
}

// Close releases the transport channel. It is idempotent: closing an
// already closed Channel is a no-op. A closed Channel can never be
// reopened.
func (c *Channel) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.handle == nil {
		return nil
	}
	err := c.handle.Destroy()
	c.handle = nil
	c.logger.Debug("closed channel", zap.Error(err))
	return err
}

// Target returns the transport-reported target of the Channel. This may
// differ from the target passed to New after name resolution.
func (c *Channel) Target() (string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.handle == nil {
		return "", channelerrors.InvalidStateErrorf(
			"cannot call Target on a closed channel")
	}
	return c.handle.Target(), nil
}

// ConnectivityState returns the current connectivity state of the Channel.
// If tryToConnect is true and the Channel is idle, the transport begins a
// connection attempt after observing the state; the returned state is the
// one seen before the kick.
func (c *Channel) ConnectivityState(tryToConnect bool) (connectivity.State, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.handle == nil {
		return connectivity.Shutdown, channelerrors.InvalidStateErrorf(
			"cannot call ConnectivityState on a closed channel")
	}
	return c.handle.CheckConnectivityState(tryToConnect), nil
}

// WatchConnectivityState registers a one-shot watch for the Channel's
// connectivity state moving away from lastState. The callback is invoked
// exactly once through the Channel's completion queue: with a state-change
// result, or with a deadline result if the deadline passes first. Watches
// do not renew themselves.
//
// WatchConnectivityState never blocks and never dispatches callbacks
// itself; delivery happens whenever the host next drives the completion
// queue. A host blocked in Next or Run wakes as soon as the watch
// completes.
func (c *Channel) WatchConnectivityState(lastState connectivity.State, deadline time.Time, callback func(completion.Result)) error {
	if !lastState.Valid() {
		return channelerrors.InvalidArgumentErrorf(
			"lastState must be a valid connectivity state, got %d", int(lastState))
	}
	if deadline.IsZero() {
		return channelerrors.InvalidArgumentErrorf(
			"watch deadline must be a valid time")
	}
	if callback == nil {
		return channelerrors.InvalidArgumentErrorf(
			"watch callback must not be nil")
	}

	c.lock.Lock()
	if c.handle == nil {
		c.lock.Unlock()
		return channelerrors.InvalidStateErrorf(
			"cannot call WatchConnectivityState on a closed channel")
	}
	tag := c.queue.NewTag(callback)
	c.handle.WatchConnectivityState(lastState, deadline, tag)
	c.lock.Unlock()

	c.logger.Debug("registered connectivity watch",
		zap.Stringer("lastState", lastState),
		zap.Time("deadline", deadline),
	)
	return nil
}

// CreateCall creates a new Call bound to this Channel's transport handle.
// The Call is valid independently of the Channel afterwards.
//
// The method name crosses the transport boundary as a length-tracked byte
// buffer: it may contain arbitrary bytes.
func (c *Channel) CreateCall(method string, deadline time.Time, opts ...CallOption) (*Call, error) {
	if deadline.IsZero() {
		return nil, channelerrors.InvalidArgumentErrorf(
			"call deadline must be a valid time")
	}
	callOptions := callOptions{flags: transport.PropagateDefaults}
	for _, opt := range opts {
		opt(&callOptions)
	}
	var parentHandle transport.CallHandle
	if callOptions.parentSet {
		if callOptions.parent == nil {
			return nil, channelerrors.InvalidArgumentErrorf(
				"parent call must be a valid call, if provided")
		}
		parentHandle = callOptions.parent.handle
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	if c.handle == nil {
		return nil, channelerrors.InvalidStateErrorf(
			"cannot call CreateCall on a closed channel")
	}

	req := transport.CallRequest{
		Method:   []byte(method),
		Deadline: deadline,
		Parent:   parentHandle,
		Flags:    callOptions.flags,
	}
	if callOptions.host != "" {
		req.Host = []byte(callOptions.host)
	}
	handle, err := c.handle.CreateCall(req)
	if err != nil {
		return nil, channelerrors.ConstructionFailureErrorf(
			"failed to create call %q: %v", method, err)
	}
	return &Call{handle: handle}, nil
}
