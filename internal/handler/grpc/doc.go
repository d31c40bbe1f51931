// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the remote service.
//
// Every open Bind stream is a binding session. Callbacks registered on a
// binding deliver ValueChanged events into its session queue; when the
// stream ends the session's callbacks are dropped and the binding released.
package grpc
