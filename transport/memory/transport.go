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

// Package memory provides an in-process transport with a controllable
// connectivity-state machine. It backs tests and in-process hosts that
// want channel semantics without a network.
package memory

import (
	"errors"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/grpckit/channel/api/transport"
	"go.uber.org/zap"
)

// Transport is an in-memory transport.Transport.
type Transport struct {
	options transportOptions

	lock    sync.Mutex
	handles []*Handle
}

// TransportOption is an option for a Transport.
type TransportOption func(*transportOptions)

type transportOptions struct {
	clock  clock.Clock
	logger *zap.Logger
}

// Clock sets the clock used for watch deadlines.
//
// The default is the real clock; tests substitute a mock clock to control
// deadline expiry deterministically.
func Clock(c clock.Clock) TransportOption {
	return func(o *transportOptions) {
		o.clock = c
	}
}

// Logger sets a logger to use for internal logging.
//
// The default is to not write any logs.
func Logger(logger *zap.Logger) TransportOption {
	return func(o *transportOptions) {
		o.logger = logger
	}
}

// NewTransport returns a new in-memory Transport.
func NewTransport(opts ...TransportOption) *Transport {
	options := transportOptions{
		clock:  clock.New(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Transport{options: options}
}

var _ transport.Transport = (*Transport)(nil)

// Credentials is the credential type accepted by this transport. It
// carries no secrets; it only exercises the secure construction path.
type Credentials struct{}

// WrappedCredentials implements transport.Credentials.
func (Credentials) WrappedCredentials() interface{} { return Credentials{} }

// CreateInsecureChannel implements transport.Transport.
func (t *Transport) CreateInsecureChannel(target string, args []transport.Arg) (transport.Handle, error) {
	return t.createChannel(target, args, false)
}

// CreateSecureChannel implements transport.Transport.
func (t *Transport) CreateSecureChannel(creds transport.Credentials, target string, args []transport.Arg) (transport.Handle, error) {
	if _, ok := creds.(Credentials); !ok {
		return nil, errors.New("credentials were not created by the memory transport")
	}
	return t.createChannel(target, args, true)
}

func (t *Transport) createChannel(target string, args []transport.Arg, secure bool) (transport.Handle, error) {
	userAgent := ""
	for _, arg := range args {
		if arg.Key == transport.ArgPrimaryUserAgent && arg.Type == transport.ArgTypeString {
			userAgent = arg.Str
		}
	}
	handle := newHandle(target, userAgent, secure, t.options.clock, t.options.logger)
	t.lock.Lock()
	t.handles = append(t.handles, handle)
	t.lock.Unlock()
	t.options.logger.Debug("created memory channel",
		zap.String("target", target),
		zap.Bool("secure", secure),
	)
	return handle, nil
}

// Handles returns every handle this transport has created, in creation
// order. Tests use this to drive connectivity transitions.
func (t *Transport) Handles() []*Handle {
	t.lock.Lock()
	defer t.lock.Unlock()
	handles := make([]*Handle, len(t.handles))
	copy(handles, t.handles)
	return handles
}
