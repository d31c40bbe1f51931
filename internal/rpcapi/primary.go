// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpcapi

import (
	"context"

	"github.com/MKhiriev/go-remote-service/models"
	"google.golang.org/grpc"
)

const (
	PrimaryServiceName = "remote.Primary"

	PrimaryRegisterCallbackMethod   = "/remote.Primary/RegisterCallback"
	PrimaryUnregisterCallbackMethod = "/remote.Primary/UnregisterCallback"
)

// PrimaryServer is the server API of remote.Primary.
type PrimaryServer interface {
	RegisterCallback(context.Context, *models.CallbackRequest) (*models.Empty, error)
	UnregisterCallback(context.Context, *models.CallbackRequest) (*models.Empty, error)
}

// PrimaryClient is the client API of remote.Primary.
type PrimaryClient interface {
	RegisterCallback(ctx context.Context, in *models.CallbackRequest, opts ...grpc.CallOption) (*models.Empty, error)
	UnregisterCallback(ctx context.Context, in *models.CallbackRequest, opts ...grpc.CallOption) (*models.Empty, error)
}

// RegisterPrimaryServer registers srv on s.
func RegisterPrimaryServer(s grpc.ServiceRegistrar, srv PrimaryServer) {
	s.RegisterService(&PrimaryServiceDesc, srv)
}

// PrimaryServiceDesc describes remote.Primary.
var PrimaryServiceDesc = grpc.ServiceDesc{
	ServiceName: PrimaryServiceName,
	HandlerType: (*PrimaryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterCallback", Handler: primaryRegisterCallbackHandler},
		{MethodName: "UnregisterCallback", Handler: primaryUnregisterCallbackHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "remote.idl",
}

func primaryRegisterCallbackHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.CallbackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PrimaryServer).RegisterCallback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PrimaryRegisterCallbackMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PrimaryServer).RegisterCallback(ctx, req.(*models.CallbackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func primaryUnregisterCallbackHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.CallbackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PrimaryServer).UnregisterCallback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: PrimaryUnregisterCallbackMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PrimaryServer).UnregisterCallback(ctx, req.(*models.CallbackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

type primaryClient struct {
	cc grpc.ClientConnInterface
}

// NewPrimaryClient returns a remote.Primary stub over cc.
func NewPrimaryClient(cc grpc.ClientConnInterface) PrimaryClient {
	return &primaryClient{cc}
}

func (c *primaryClient) RegisterCallback(ctx context.Context, in *models.CallbackRequest, opts ...grpc.CallOption) (*models.Empty, error) {
	out := new(models.Empty)
	if err := c.cc.Invoke(ctx, PrimaryRegisterCallbackMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *primaryClient) UnregisterCallback(ctx context.Context, in *models.CallbackRequest, opts ...grpc.CallOption) (*models.Empty, error) {
	out := new(models.Empty)
	if err := c.cc.Invoke(ctx, PrimaryUnregisterCallbackMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
