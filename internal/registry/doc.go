// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry keeps the set of callback handles registered by remote
// clients and fans values out to them.
//
// A [CallbackRegistry] is safe for concurrent use. [CallbackRegistry.Broadcast]
// iterates over a snapshot taken at its start, so registrations and
// unregistrations that race with it never disturb the in-flight delivery.
// A handle whose delivery fails is pruned after the iteration; one dead
// client never stops delivery to the others.
package registry
