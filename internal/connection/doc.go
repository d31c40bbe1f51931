// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connection manages client bindings to the remote service.
//
// A [Binding] is one client session on one interface with a set of policy
// flags. It moves through Binding, Connected and Disconnected and ends in
// Unbound. When the server process dies every binding drops to Disconnected
// and reconnects with exponential backoff, firing OnServiceConnected again;
// a binding carrying WaivePriority is released instead.
//
// Connecting does not register anything: clients register their callbacks
// through [Primary] from OnServiceConnected, every time it fires.
package connection
