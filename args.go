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
	"sort"

	"github.com/grpckit/channel/api/transport"
	"github.com/grpckit/channel/channelerrors"
)

// BuildArgs converts a raw argument mapping into the ordered argument set
// handed to a transport. A nil mapping is treated as empty.
//
// Values must be integers or strings; anything else fails with an
// invalid-argument error naming the offending key. Keys are emitted in
// sorted order so the result is deterministic.
//
// The primary user-agent entry is normalized: if the mapping has no
// grpc.primary_user_agent entry, one is appended holding UserAgent; if the
// caller supplied a string value, UserAgent is appended to it after a
// single space, with the caller's value first.
//
// Duplicate keys cannot occur: the input is a map, so the last write for a
// key wins before BuildArgs ever sees the set.
func BuildArgs(raw map[string]interface{}) ([]transport.Arg, error) {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	args := make([]transport.Arg, 0, len(raw)+1)
	hasUserAgent := false
	for _, key := range keys {
		if key == "" {
			return nil, channelerrors.InvalidArgumentErrorf(
				"channel argument keys must be non-empty strings")
		}
		if key == transport.ArgPrimaryUserAgent {
			hasUserAgent = true
		}
		arg := transport.Arg{Key: key}
		switch value := raw[key].(type) {
		case int:
			arg.Type = transport.ArgTypeInt
			arg.Int = int64(value)
		case int32:
			arg.Type = transport.ArgTypeInt
			arg.Int = int64(value)
		case int64:
			arg.Type = transport.ArgTypeInt
			arg.Int = value
		case string:
			arg.Type = transport.ArgTypeString
			if key == transport.ArgPrimaryUserAgent {
				// The caller's user agent takes priority; ours follows
				// after a single space.
				arg.Str = value + " " + UserAgent
			} else {
				arg.Str = value
			}
		default:
			return nil, channelerrors.InvalidArgumentErrorf(
				"channel argument %q must have an integer or string value, got %T",
				key, raw[key])
		}
		args = append(args, arg)
	}

	if !hasUserAgent {
		args = append(args, transport.Arg{
			Key:  transport.ArgPrimaryUserAgent,
			Type: transport.ArgTypeString,
			Str:  UserAgent,
		})
	}
	return args, nil
}
