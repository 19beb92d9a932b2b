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
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/grpckit/channel/api/transport"
	"github.com/grpckit/channel/completion"
	"github.com/grpckit/channel/connectivity"
	"go.uber.org/zap"
)

// Handle is an in-memory transport channel. Its connectivity state starts
// at Idle and moves only through SetState, CheckConnectivityState's
// try-to-connect kick, and Destroy.
type Handle struct {
	target    string
	userAgent string
	secure    bool
	clock     clock.Clock
	logger    *zap.Logger

	lock      sync.Mutex
	state     connectivity.State
	notify    chan struct{} // closed and replaced on every transition
	destroyed bool
}

var _ transport.Handle = (*Handle)(nil)

func newHandle(target, userAgent string, secure bool, c clock.Clock, logger *zap.Logger) *Handle {
	return &Handle{
		target:    target,
		userAgent: userAgent,
		secure:    secure,
		clock:     c,
		logger:    logger,
		state:     connectivity.Idle,
		notify:    make(chan struct{}),
	}
}

// Destroy implements transport.Handle. The handle moves to Shutdown and
// wakes all watchers; calls created earlier stay valid. The transition
// and the destroyed flip happen atomically so no concurrent SetState can
// land in between.
func (h *Handle) Destroy() error {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.destroyed {
		return nil
	}
	h.destroyed = true
	if h.state != connectivity.Shutdown {
		h.transitionLocked(connectivity.Shutdown)
	}
	return nil
}

// Target implements transport.Handle.
func (h *Handle) Target() string {
	return h.target
}

// UserAgent returns the primary user-agent string the handle was created
// with.
func (h *Handle) UserAgent() string {
	return h.userAgent
}

// Secure reports whether the handle was created through the secure path.
func (h *Handle) Secure() bool {
	return h.secure
}

// CheckConnectivityState implements transport.Handle. The observed state
// is reported first; with tryToConnect, an Idle handle is then kicked
// into Connecting.
func (h *Handle) CheckConnectivityState(tryToConnect bool) connectivity.State {
	h.lock.Lock()
	state := h.state
	if tryToConnect && state == connectivity.Idle {
		h.transitionLocked(connectivity.Connecting)
	}
	h.lock.Unlock()
	return state
}

// SetState transitions the handle to the given state and wakes all
// watchers. Transitions on a destroyed handle are ignored.
func (h *Handle) SetState(state connectivity.State) {
	h.setState(state)
}

func (h *Handle) setState(state connectivity.State) {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.destroyed || h.state == state {
		return
	}
	h.transitionLocked(state)
}

func (h *Handle) transitionLocked(state connectivity.State) {
	h.logger.Debug("connectivity transition",
		zap.String("target", h.target),
		zap.Stringer("from", h.state),
		zap.Stringer("to", state),
	)
	h.state = state
	close(h.notify)
	h.notify = make(chan struct{})
}

// WatchConnectivityState implements transport.Handle. Rapid transitions
// coalesce: a watcher only compares the current state against lastState,
// so it may observe just the final state of a burst.
func (h *Handle) WatchConnectivityState(lastState connectivity.State, deadline time.Time, tag *completion.Tag) {
	go h.watch(lastState, deadline, tag)
}

func (h *Handle) watch(lastState connectivity.State, deadline time.Time, tag *completion.Tag) {
	timer := h.clock.Timer(deadline.Sub(h.clock.Now()))
	defer timer.Stop()
	for {
		h.lock.Lock()
		state := h.state
		notify := h.notify
		h.lock.Unlock()

		if state != lastState {
			tag.Complete(completion.Result{StateChanged: true, State: state})
			return
		}
		select {
		case <-notify:
		case <-timer.C:
			tag.Complete(completion.Result{})
			return
		}
	}
}

// CreateCall implements transport.Handle.
func (h *Handle) CreateCall(req transport.CallRequest) (transport.CallHandle, error) {
	h.lock.Lock()
	destroyed := h.destroyed
	h.lock.Unlock()
	if destroyed {
		return nil, errors.New("transport channel is destroyed")
	}
	return newCall(req), nil
}
