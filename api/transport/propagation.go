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

// Propagation flags select which context a child call inherits from its
// parent call.
const (
	// PropagateDeadline inherits the parent's deadline when it is earlier
	// than the child's own.
	PropagateDeadline uint32 = 1 << 0

	// PropagateCensusStatsContext inherits the parent's stats context.
	PropagateCensusStatsContext uint32 = 1 << 1

	// PropagateCensusTracingContext inherits the parent's tracing span.
	PropagateCensusTracingContext uint32 = 1 << 2

	// PropagateCancellation cancels the child when the parent is
	// cancelled.
	PropagateCancellation uint32 = 1 << 3

	// PropagateDefaults is the mask used when the caller does not specify
	// propagation flags: everything is inherited.
	PropagateDefaults uint32 = 0xffff
)
