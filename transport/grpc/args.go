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

package grpctransport

import (
	"errors"
	"fmt"

	"github.com/grpckit/channel/api/transport"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

var errInvalidCredentials = errors.New("credentials were not created by the grpc transport")

// dialOptionsForArgs maps channel arguments onto grpc.DialOptions. Keys
// this transport has no mapping for are logged and skipped. Wrongly typed
// values for known keys are collected into one error.
func dialOptionsForArgs(args []transport.Arg, logger *zap.Logger) ([]grpc.DialOption, error) {
	var dialOptions []grpc.DialOption
	var err error
	for _, arg := range args {
		switch arg.Key {
		case transport.ArgPrimaryUserAgent:
			str, strErr := stringArg(arg)
			if strErr != nil {
				err = multierr.Append(err, strErr)
				continue
			}
			dialOptions = append(dialOptions, grpc.WithUserAgent(str))
		case transport.ArgDefaultAuthority:
			str, strErr := stringArg(arg)
			if strErr != nil {
				err = multierr.Append(err, strErr)
				continue
			}
			dialOptions = append(dialOptions, grpc.WithAuthority(str))
		case transport.ArgMaxReceiveMessageLength:
			i, intErr := intArg(arg)
			if intErr != nil {
				err = multierr.Append(err, intErr)
				continue
			}
			dialOptions = append(dialOptions, grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(int(i))))
		case transport.ArgMaxSendMessageLength:
			i, intErr := intArg(arg)
			if intErr != nil {
				err = multierr.Append(err, intErr)
				continue
			}
			dialOptions = append(dialOptions, grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(int(i))))
		default:
			logger.Debug("ignoring unsupported channel argument", zap.String("key", arg.Key))
		}
	}
	return dialOptions, err
}

func stringArg(arg transport.Arg) (string, error) {
	if arg.Type != transport.ArgTypeString {
		return "", fmt.Errorf("channel argument %q must have a string value", arg.Key)
	}
	return arg.Str, nil
}

func intArg(arg transport.Arg) (int64, error) {
	if arg.Type != transport.ArgTypeInt {
		return 0, fmt.Errorf("channel argument %q must have an integer value", arg.Key)
	}
	return arg.Int, nil
}
