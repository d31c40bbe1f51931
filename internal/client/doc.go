// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It wires the server adapters and the connection manager into one process
// lifecycle. Values pushed by the server reach client code through a [Sink]
// that posts them to a single-threaded [Looper], so client logic never runs
// on the delivery goroutine.
package client
