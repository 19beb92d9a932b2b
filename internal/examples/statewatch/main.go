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

// statewatch creates a channel over the in-memory transport, drives its
// connectivity state through a full connect cycle, and prints every change
// observed through the completion queue.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/grpckit/channel"
	"github.com/grpckit/channel/completion"
	"github.com/grpckit/channel/connectivity"
	"github.com/grpckit/channel/transport/memory"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	memoryTransport := memory.NewTransport(memory.Logger(logger))
	queue := completion.New(completion.Logger(logger))

	ch, err := channel.New("memory://example", nil, nil,
		channel.Transport(memoryTransport),
		channel.CompletionQueue(queue),
		channel.Logger(logger),
	)
	if err != nil {
		return err
	}
	defer ch.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Drive the handle through a connect cycle while watching each change.
	handle := memoryTransport.Handles()[0]
	go func() {
		for _, state := range []connectivity.State{
			connectivity.Connecting,
			connectivity.Ready,
			connectivity.TransientFailure,
			connectivity.Idle,
		} {
			time.Sleep(100 * time.Millisecond)
			handle.SetState(state)
		}
	}()

	last, err := ch.ConnectivityState(false)
	if err != nil {
		return err
	}
	for last != connectivity.TransientFailure {
		results := make(chan completion.Result, 1)
		err := ch.WatchConnectivityState(last, time.Now().Add(time.Second), func(result completion.Result) {
			results <- result
		})
		if err != nil {
			return err
		}
		if err := queue.Next(ctx); err != nil {
			return err
		}
		result := <-results
		if !result.StateChanged {
			return fmt.Errorf("no state change before the watch deadline, still %v", last)
		}
		fmt.Printf("connectivity: %v -> %v\n", last, result.State)
		last = result.State
	}
	return nil
}
