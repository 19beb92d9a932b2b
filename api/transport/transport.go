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

// Package transport declares the interfaces a transport implementation
// must satisfy to back a channel. The hard parts of an RPC client —
// connection establishment, multiplexing, flow control, retry — live
// behind these interfaces; the channel layer above only manages lifetime
// and forwards operations.
package transport

import (
	"time"

	"github.com/grpckit/channel/completion"
	"github.com/grpckit/channel/connectivity"
)

// Transport creates transport-level channels.
type Transport interface {
	// CreateInsecureChannel creates a channel to the target with no
	// transport security.
	CreateInsecureChannel(target string, args []Arg) (Handle, error)

	// CreateSecureChannel creates a channel to the target using the given
	// credentials. Implementations accept only credentials they produced
	// themselves.
	CreateSecureChannel(creds Credentials, target string, args []Arg) (Handle, error)
}

// Handle is a transport-level channel. The channel layer owns a Handle
// exclusively and destroys it exactly once.
type Handle interface {
	// Destroy releases the transport channel. Calls created from the
	// handle remain valid after Destroy.
	Destroy() error

	// Target returns the transport-reported destination. This may differ
	// from the target the handle was created with after name resolution.
	Target() string

	// CheckConnectivityState returns the current connectivity state. If
	// tryToConnect is true and the handle is idle, the transport begins a
	// connection attempt.
	CheckConnectivityState(tryToConnect bool) connectivity.State

	// WatchConnectivityState completes the tag exactly once: with a
	// state-change result once the state differs from lastState, or with
	// a deadline result if the deadline passes first. It never blocks the
	// caller.
	WatchConnectivityState(lastState connectivity.State, deadline time.Time, tag *completion.Tag)

	// CreateCall creates a new call on this handle. The returned call is
	// independent of the handle's subsequent lifetime.
	CreateCall(req CallRequest) (CallHandle, error)
}

// CallRequest carries everything a transport needs to create a call.
//
// Method and Host are length-tracked byte slices, never NUL-terminated
// strings: method names may contain arbitrary bytes, and transports must
// treat the slice length as the authoritative size.
type CallRequest struct {
	// Method is the full method name, e.g. "/pkg.Service/Method".
	Method []byte

	// Host overrides the destination authority for this call. Nil means
	// no override.
	Host []byte

	// Deadline is the absolute time after which the call is abandoned.
	Deadline time.Time

	// Parent, if non-nil, is the call to propagate context from,
	// according to Flags. It must have been created by the same
	// transport.
	Parent CallHandle

	// Flags selects which context a child call inherits from Parent. See
	// the Propagate constants.
	Flags uint32
}

// CallHandle is an opaque transport-level call. The channel layer consumes
// no further contract from it; Cancel exists for the call's owner.
type CallHandle interface {
	// Cancel abandons the call. It is safe to call more than once.
	Cancel()
}

// Credentials is an opaque wrapper around transport-level channel
// credentials. Nil credentials select an insecure channel.
type Credentials interface {
	// WrappedCredentials returns the transport-level credential value.
	WrappedCredentials() interface{}
}
