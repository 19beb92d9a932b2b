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

// Package testtime stretches test timeouts through the TEST_TIME_SCALE
// environment variable so timing-sensitive tests survive slow hosts.
package testtime

import (
	"os"
	"strconv"
	"time"
)

var multiplier = func() float64 {
	value := os.Getenv("TEST_TIME_SCALE")
	if value == "" {
		return 1
	}
	m, err := strconv.ParseFloat(value, 64)
	if err != nil {
		panic("invalid TEST_TIME_SCALE: " + value)
	}
	return m
}()

// Scale returns the duration stretched by the TEST_TIME_SCALE multiplier.
func Scale(d time.Duration) time.Duration {
	return time.Duration(float64(d) * multiplier)
}
