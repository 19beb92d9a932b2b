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
	"context"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/grpckit/channel/api/transport"
	"github.com/grpckit/channel/completion"
	"github.com/grpckit/channel/connectivity"
	"github.com/grpckit/channel/internal/testtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandle(t *testing.T, opts ...TransportOption) *Handle {
	t.Helper()
	memTransport := NewTransport(opts...)
	handle, err := memTransport.CreateInsecureChannel("localhost:0", []transport.Arg{
		{Key: transport.ArgPrimaryUserAgent, Type: transport.ArgTypeString, Str: "test/1.0"},
	})
	require.NoError(t, err)
	return handle.(*Handle)
}

func TestHandleStartsIdle(t *testing.T) {
	handle := newTestHandle(t)
	assert.Equal(t, connectivity.Idle, handle.CheckConnectivityState(false))
	assert.Equal(t, "localhost:0", handle.Target())
	assert.Equal(t, "test/1.0", handle.UserAgent())
	assert.False(t, handle.Secure())
}

func TestSecureChannelRequiresMemoryCredentials(t *testing.T) {
	memTransport := NewTransport()

	handle, err := memTransport.CreateSecureChannel(Credentials{}, "localhost:0", nil)
	require.NoError(t, err)
	assert.True(t, handle.(*Handle).Secure())

	_, err = memTransport.CreateSecureChannel(foreignCredentials{}, "localhost:0", nil)
	assert.Error(t, err)
}

type foreignCredentials struct{}

func (foreignCredentials) WrappedCredentials() interface{} { return nil }

func TestSetStateWakesWatcher(t *testing.T) {
	handle := newTestHandle(t)
	queue := completion.New()

	results := make(chan completion.Result, 1)
	tag := queue.NewTag(func(result completion.Result) { results <- result })
	handle.WatchConnectivityState(connectivity.Idle, time.Now().Add(testtime.Scale(5*time.Second)), tag)

	handle.SetState(connectivity.Ready)

	ctx, cancel := context.WithTimeout(context.Background(), testtime.Scale(5*time.Second))
	defer cancel()
	require.NoError(t, queue.Next(ctx))

	result := <-results
	assert.True(t, result.StateChanged)
	assert.Equal(t, connectivity.Ready, result.State)
}

func TestWatchDeadlineWithMockClock(t *testing.T) {
	mockClock := clock.NewMock()
	handle := newTestHandle(t, Clock(mockClock))
	queue := completion.New()

	results := make(chan completion.Result, 1)
	tag := queue.NewTag(func(result completion.Result) { results <- result })
	handle.WatchConnectivityState(connectivity.Idle, mockClock.Now().Add(time.Second), tag)

	// Let the watcher install its timer before moving the clock.
	time.Sleep(testtime.Scale(50 * time.Millisecond))
	mockClock.Add(2 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), testtime.Scale(5*time.Second))
	defer cancel()
	require.NoError(t, queue.Next(ctx))

	result := <-results
	assert.False(t, result.StateChanged)
}

func TestWatchCoalescesRapidTransitions(t *testing.T) {
	handle := newTestHandle(t)
	queue := completion.New()

	// Two transitions happen before the watch looks: only the final state
	// is compared against the last-known state.
	handle.SetState(connectivity.Connecting)
	handle.SetState(connectivity.Ready)

	results := make(chan completion.Result, 1)
	tag := queue.NewTag(func(result completion.Result) { results <- result })
	handle.WatchConnectivityState(connectivity.Idle, time.Now().Add(testtime.Scale(5*time.Second)), tag)

	ctx, cancel := context.WithTimeout(context.Background(), testtime.Scale(5*time.Second))
	defer cancel()
	require.NoError(t, queue.Next(ctx))

	result := <-results
	assert.True(t, result.StateChanged)
	assert.Equal(t, connectivity.Ready, result.State)
}

func TestTryToConnectKicksIdleHandle(t *testing.T) {
	handle := newTestHandle(t)
	queue := completion.New()

	results := make(chan completion.Result, 1)
	tag := queue.NewTag(func(result completion.Result) { results <- result })
	handle.WatchConnectivityState(connectivity.Idle, time.Now().Add(testtime.Scale(5*time.Second)), tag)

	// The observed state is reported before the kick takes effect.
	assert.Equal(t, connectivity.Idle, handle.CheckConnectivityState(true))
	assert.Equal(t, connectivity.Connecting, handle.CheckConnectivityState(false))

	ctx, cancel := context.WithTimeout(context.Background(), testtime.Scale(5*time.Second))
	defer cancel()
	require.NoError(t, queue.Next(ctx))

	result := <-results
	assert.True(t, result.StateChanged)
	assert.Equal(t, connectivity.Connecting, result.State)
}

func TestDestroyMovesToShutdownAndWakesWatchers(t *testing.T) {
	handle := newTestHandle(t)
	queue := completion.New()

	results := make(chan completion.Result, 1)
	tag := queue.NewTag(func(result completion.Result) { results <- result })
	handle.WatchConnectivityState(connectivity.Idle, time.Now().Add(testtime.Scale(5*time.Second)), tag)

	require.NoError(t, handle.Destroy())

	ctx, cancel := context.WithTimeout(context.Background(), testtime.Scale(5*time.Second))
	defer cancel()
	require.NoError(t, queue.Next(ctx))

	result := <-results
	assert.True(t, result.StateChanged)
	assert.Equal(t, connectivity.Shutdown, result.State)

	// Destroyed handles reject new calls and ignore transitions.
	_, err := handle.CreateCall(transport.CallRequest{Method: []byte("/s/m")})
	assert.Error(t, err)
	handle.SetState(connectivity.Ready)
	assert.Equal(t, connectivity.Shutdown, handle.CheckConnectivityState(false))
}

func TestDestroyWinsOverConcurrentSetState(t *testing.T) {
	// However a racing transition interleaves with Destroy, a destroyed
	// handle must end up Shutdown, never stuck in the raced state.
	for i := 0; i < 100; i++ {
		handle := newTestHandle(t)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			handle.SetState(connectivity.Ready)
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, handle.Destroy())
		}()
		wg.Wait()

		assert.Equal(t, connectivity.Shutdown, handle.CheckConnectivityState(false))
	}
}

func TestCreateCallCopiesBuffers(t *testing.T) {
	handle := newTestHandle(t)

	method := []byte("/pkg.Service/Method")
	host := []byte("example.com")
	callHandle, err := handle.CreateCall(transport.CallRequest{
		Method:   method,
		Host:     host,
		Deadline: time.Now().Add(time.Second),
		Flags:    transport.PropagateDefaults,
	})
	require.NoError(t, err)

	// Mutating the caller's buffers must not leak into the call.
	method[1] = 'X'
	host[0] = 'X'

	call := callHandle.(*Call)
	assert.Equal(t, []byte("/pkg.Service/Method"), call.Method())
	assert.Equal(t, []byte("example.com"), call.Host())
}

func TestCallCancel(t *testing.T) {
	handle := newTestHandle(t)
	callHandle, err := handle.CreateCall(transport.CallRequest{
		Method:   []byte("/s/m"),
		Deadline: time.Now().Add(time.Second),
	})
	require.NoError(t, err)

	call := callHandle.(*Call)
	assert.False(t, call.Canceled())
	call.Cancel()
	call.Cancel()
	assert.True(t, call.Canceled())
}
