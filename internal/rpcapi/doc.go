// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpcapi defines the RPC surface of the remote service on top of
// gRPC: three services, their client stubs and the CBOR message codec.
//
//	service remote.Host {
//	  rpc Start(StartRequest) returns (StartResponse);
//	  rpc Stop(StopRequest) returns (Empty);
//	  rpc Bind(BindRequest) returns (stream BindEvent);
//	}
//	service remote.Primary {
//	  rpc RegisterCallback(CallbackRequest) returns (Empty);
//	  rpc UnregisterCallback(CallbackRequest) returns (Empty);
//	}
//	service remote.Secondary {
//	  rpc GetServerProcessID(SecondaryRequest) returns (ProcessID);
//	  rpc ExerciseTypes(ExerciseTypesRequest) returns (Empty);
//	  rpc KillProcess(SecondaryRequest) returns (Empty);
//	}
//
// A Bind stream is the binding: its first event is EventConnected, later
// events carry callback deliveries, and closing it unbinds. Messages are the
// types of package models encoded with CBOR; clients must select the codec
// with [CallOption].
package rpcapi
