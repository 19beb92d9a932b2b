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

// Package grpctransport backs channels with google.golang.org/grpc.
// Connection establishment, HTTP/2 multiplexing, flow control, name
// resolution, and TLS all live inside grpc-go; this package adapts its
// surface to the transport interfaces.
package grpctransport

import (
	"crypto/tls"

	"github.com/grpckit/channel/api/transport"
	opentracing "github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Transport is a transport.Transport backed by grpc-go client connections.
type Transport struct {
	options transportOptions
}

// TransportOption is an option for a Transport.
type TransportOption func(*transportOptions)

type transportOptions struct {
	logger      *zap.Logger
	tracer      opentracing.Tracer
	dialOptions []grpc.DialOption
}

// Logger sets a logger to use for internal logging.
//
// The default is to not write any logs.
func Logger(logger *zap.Logger) TransportOption {
	return func(o *transportOptions) {
		o.logger = logger
	}
}

// Tracer specifies the tracer to use for call spans.
//
// The default is to not trace.
func Tracer(tracer opentracing.Tracer) TransportOption {
	return func(o *transportOptions) {
		o.tracer = tracer
	}
}

// DialOptions appends extra grpc.DialOptions applied to every channel this
// transport creates, after the options derived from channel arguments.
func DialOptions(opts ...grpc.DialOption) TransportOption {
	return func(o *transportOptions) {
		o.dialOptions = append(o.dialOptions, opts...)
	}
}

// NewTransport returns a new grpc-backed Transport.
func NewTransport(opts ...TransportOption) *Transport {
	options := transportOptions{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Transport{options: options}
}

var _ transport.Transport = (*Transport)(nil)

// TLSCredentials wraps grpc transport credentials built from a TLS config.
type TLSCredentials struct {
	creds credentials.TransportCredentials
}

// NewTLSCredentials returns channel credentials for the given TLS config.
func NewTLSCredentials(config *tls.Config) *TLSCredentials {
	return &TLSCredentials{creds: credentials.NewTLS(config)}
}

// WrappedCredentials implements transport.Credentials.
func (c *TLSCredentials) WrappedCredentials() interface{} {
	return c.creds
}

// CreateInsecureChannel implements transport.Transport.
func (t *Transport) CreateInsecureChannel(target string, args []transport.Arg) (transport.Handle, error) {
	return t.newClient(target, args, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// CreateSecureChannel implements transport.Transport.
func (t *Transport) CreateSecureChannel(creds transport.Credentials, target string, args []transport.Arg) (transport.Handle, error) {
	tlsCreds, ok := creds.(*TLSCredentials)
	if !ok {
		return nil, errInvalidCredentials
	}
	return t.newClient(target, args, grpc.WithTransportCredentials(tlsCreds.creds))
}

// newClient builds the client connection for a channel. grpc.NewClient
// never connects on its own: the connection stays Idle until an RPC or a
// try-to-connect kick moves it.
func (t *Transport) newClient(target string, args []transport.Arg, securityOption grpc.DialOption) (transport.Handle, error) {
	dialOptions := []grpc.DialOption{securityOption}
	argOptions, err := dialOptionsForArgs(args, t.options.logger)
	if err != nil {
		return nil, err
	}
	dialOptions = append(dialOptions, argOptions...)
	dialOptions = append(dialOptions, t.options.dialOptions...)

	conn, err := grpc.NewClient(target, dialOptions...)
	if err != nil {
		return nil, err
	}
	t.options.logger.Debug("created grpc channel", zap.String("target", target))
	return &channelHandle{
		conn:   conn,
		tracer: t.options.tracer,
		logger: t.options.logger,
	}, nil
}
