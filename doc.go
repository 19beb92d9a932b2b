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

// Package channel manages the lifecycle of RPC client channels: creation,
// idempotent close, connectivity-state queries, asynchronous
// connectivity-state watches, and call creation.
//
// A Channel wraps exactly one transport-level channel. The transport is
// pluggable through the api/transport interfaces; transport/grpc backs
// channels with google.golang.org/grpc and is the default, while
// transport/memory provides a controllable in-process transport for tests.
//
// Asynchronous notifications are funneled through a single shared
// completion queue (package completion) that the host drives with Next or
// Run. Watches resolve exactly once, either because the state changed or
// because the watch deadline expired.
package channel
