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

// Package connectivity defines the coarse-grained health states of a
// channel's underlying transport connection.
package connectivity

// State is the connectivity state of a channel. The numeric order of the
// states is part of the contract: callers compare states by ordinal.
type State int

const (
	// Idle indicates the channel has no outstanding work and no active
	// connection attempt.
	Idle State = iota

	// Connecting indicates the channel is establishing a connection.
	Connecting

	// Ready indicates the channel has a healthy connection and can
	// service calls.
	Ready

	// TransientFailure indicates the channel has seen a failure that it
	// expects to recover from.
	TransientFailure

	// Shutdown indicates the channel has started shutting down and will
	// never become ready again.
	Shutdown
)

var stateToName = map[State]string{
	Idle:             "IDLE",
	Connecting:       "CONNECTING",
	Ready:            "READY",
	TransientFailure: "TRANSIENT_FAILURE",
	Shutdown:         "SHUTDOWN",
}

// String returns the canonical name of the state, or "INVALID_STATE" for
// values outside the enumeration.
func (s State) String() string {
	if name, ok := stateToName[s]; ok {
		return name
	}
	return "INVALID_STATE"
}

// Valid reports whether s is one of the enumerated connectivity states.
func (s State) Valid() bool {
	_, ok := stateToName[s]
	return ok
}
