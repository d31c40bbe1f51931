// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpcapi

import (
	"context"

	"github.com/MKhiriev/go-remote-service/models"
	"google.golang.org/grpc"
)

const (
	SecondaryServiceName = "remote.Secondary"

	SecondaryGetServerProcessIDMethod = "/remote.Secondary/GetServerProcessID"
	SecondaryExerciseTypesMethod      = "/remote.Secondary/ExerciseTypes"
	SecondaryKillProcessMethod        = "/remote.Secondary/KillProcess"
)

// SecondaryServer is the server API of remote.Secondary.
type SecondaryServer interface {
	GetServerProcessID(context.Context, *models.SecondaryRequest) (*models.ProcessID, error)
	ExerciseTypes(context.Context, *models.ExerciseTypesRequest) (*models.Empty, error)
	KillProcess(context.Context, *models.SecondaryRequest) (*models.Empty, error)
}

// SecondaryClient is the client API of remote.Secondary.
type SecondaryClient interface {
	GetServerProcessID(ctx context.Context, in *models.SecondaryRequest, opts ...grpc.CallOption) (*models.ProcessID, error)
	ExerciseTypes(ctx context.Context, in *models.ExerciseTypesRequest, opts ...grpc.CallOption) (*models.Empty, error)
	KillProcess(ctx context.Context, in *models.SecondaryRequest, opts ...grpc.CallOption) (*models.Empty, error)
}

// RegisterSecondaryServer registers srv on s.
func RegisterSecondaryServer(s grpc.ServiceRegistrar, srv SecondaryServer) {
	s.RegisterService(&SecondaryServiceDesc, srv)
}

// SecondaryServiceDesc describes remote.Secondary.
var SecondaryServiceDesc = grpc.ServiceDesc{
	ServiceName: SecondaryServiceName,
	HandlerType: (*SecondaryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetServerProcessID", Handler: secondaryGetServerProcessIDHandler},
		{MethodName: "ExerciseTypes", Handler: secondaryExerciseTypesHandler},
		{MethodName: "KillProcess", Handler: secondaryKillProcessHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "remote.idl",
}

func secondaryGetServerProcessIDHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.SecondaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SecondaryServer).GetServerProcessID(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SecondaryGetServerProcessIDMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SecondaryServer).GetServerProcessID(ctx, req.(*models.SecondaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func secondaryExerciseTypesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.ExerciseTypesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SecondaryServer).ExerciseTypes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SecondaryExerciseTypesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SecondaryServer).ExerciseTypes(ctx, req.(*models.ExerciseTypesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func secondaryKillProcessHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.SecondaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SecondaryServer).KillProcess(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SecondaryKillProcessMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SecondaryServer).KillProcess(ctx, req.(*models.SecondaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

type secondaryClient struct {
	cc grpc.ClientConnInterface
}

// NewSecondaryClient returns a remote.Secondary stub over cc.
func NewSecondaryClient(cc grpc.ClientConnInterface) SecondaryClient {
	return &secondaryClient{cc}
}

func (c *secondaryClient) GetServerProcessID(ctx context.Context, in *models.SecondaryRequest, opts ...grpc.CallOption) (*models.ProcessID, error) {
	out := new(models.ProcessID)
	if err := c.cc.Invoke(ctx, SecondaryGetServerProcessIDMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *secondaryClient) ExerciseTypes(ctx context.Context, in *models.ExerciseTypesRequest, opts ...grpc.CallOption) (*models.Empty, error) {
	out := new(models.Empty)
	if err := c.cc.Invoke(ctx, SecondaryExerciseTypesMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *secondaryClient) KillProcess(ctx context.Context, in *models.SecondaryRequest, opts ...grpc.CallOption) (*models.Empty, error) {
	out := new(models.Empty)
	if err := c.cc.Invoke(ctx, SecondaryKillProcessMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
