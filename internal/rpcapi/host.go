// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpcapi

import (
	"context"

	"github.com/MKhiriev/go-remote-service/models"
	"google.golang.org/grpc"
)

const (
	HostServiceName = "remote.Host"

	HostStartMethod = "/remote.Host/Start"
	HostStopMethod  = "/remote.Host/Stop"
	HostBindMethod  = "/remote.Host/Bind"
)

// HostServer is the server API of remote.Host.
type HostServer interface {
	Start(context.Context, *models.StartRequest) (*models.StartResponse, error)
	Stop(context.Context, *models.StopRequest) (*models.Empty, error)
	Bind(*models.BindRequest, HostBindServer) error
}

// HostBindServer is the server side of a Bind stream.
type HostBindServer interface {
	Send(*models.BindEvent) error
	grpc.ServerStream
}

// HostClient is the client API of remote.Host.
type HostClient interface {
	Start(ctx context.Context, in *models.StartRequest, opts ...grpc.CallOption) (*models.StartResponse, error)
	Stop(ctx context.Context, in *models.StopRequest, opts ...grpc.CallOption) (*models.Empty, error)
	Bind(ctx context.Context, in *models.BindRequest, opts ...grpc.CallOption) (HostBindClient, error)
}

// HostBindClient is the client side of a Bind stream.
type HostBindClient interface {
	Recv() (*models.BindEvent, error)
	grpc.ClientStream
}

// RegisterHostServer registers srv on s.
func RegisterHostServer(s grpc.ServiceRegistrar, srv HostServer) {
	s.RegisterService(&HostServiceDesc, srv)
}

// HostServiceDesc describes remote.Host.
var HostServiceDesc = grpc.ServiceDesc{
	ServiceName: HostServiceName,
	HandlerType: (*HostServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Start", Handler: hostStartHandler},
		{MethodName: "Stop", Handler: hostStopHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Bind", Handler: hostBindHandler, ServerStreams: true},
	},
	Metadata: "remote.idl",
}

func hostStartHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.StartRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HostServer).Start(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: HostStartMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HostServer).Start(ctx, req.(*models.StartRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func hostStopHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.StopRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HostServer).Stop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: HostStopMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HostServer).Stop(ctx, req.(*models.StopRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func hostBindHandler(srv any, stream grpc.ServerStream) error {
	in := new(models.BindRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(HostServer).Bind(in, &hostBindServer{stream})
}

type hostBindServer struct {
	grpc.ServerStream
}

func (x *hostBindServer) Send(m *models.BindEvent) error {
	return x.ServerStream.SendMsg(m)
}

type hostClient struct {
	cc grpc.ClientConnInterface
}

// NewHostClient returns a remote.Host stub over cc.
func NewHostClient(cc grpc.ClientConnInterface) HostClient {
	return &hostClient{cc}
}

func (c *hostClient) Start(ctx context.Context, in *models.StartRequest, opts ...grpc.CallOption) (*models.StartResponse, error) {
	out := new(models.StartResponse)
	if err := c.cc.Invoke(ctx, HostStartMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hostClient) Stop(ctx context.Context, in *models.StopRequest, opts ...grpc.CallOption) (*models.Empty, error) {
	out := new(models.Empty)
	if err := c.cc.Invoke(ctx, HostStopMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hostClient) Bind(ctx context.Context, in *models.BindRequest, opts ...grpc.CallOption) (HostBindClient, error) {
	stream, err := c.cc.NewStream(ctx, &HostServiceDesc.Streams[0], HostBindMethod, opts...)
	if err != nil {
		return nil, err
	}
	x := &hostBindClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type hostBindClient struct {
	grpc.ClientStream
}

func (x *hostBindClient) Recv() (*models.BindEvent, error) {
	m := new(models.BindEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
