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

package transport

// Reserved argument keys understood by transports.
const (
	// ArgPrimaryUserAgent is the primary user-agent string reported to
	// the destination. The channel layer merges its own product
	// identifier into this entry before the argument set reaches a
	// transport.
	ArgPrimaryUserAgent = "grpc.primary_user_agent"

	// ArgDefaultAuthority overrides the :authority pseudo-header for all
	// calls on the channel.
	ArgDefaultAuthority = "grpc.default_authority"

	// ArgMaxReceiveMessageLength caps the size of a received message in
	// bytes.
	ArgMaxReceiveMessageLength = "grpc.max_receive_message_length"

	// ArgMaxSendMessageLength caps the size of a sent message in bytes.
	ArgMaxSendMessageLength = "grpc.max_send_message_length"
)

// ArgType discriminates the value held by an Arg.
type ArgType int

const (
	// ArgTypeInt means the Arg carries an integer value.
	ArgTypeInt ArgType = iota

	// ArgTypeString means the Arg carries a string value.
	ArgTypeString
)

// Arg is a single channel configuration entry. Keys are unique within an
// argument set; the value is either an integer or a string, selected by
// Type.
type Arg struct {
	Key  string
	Type ArgType
	Int  int64
	Str  string
}
