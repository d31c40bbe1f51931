// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the diagnostic HTTP surface of the server process.
//
// It exposes the build version, a JSON snapshot of the host and service
// state, and the Prometheus registry. Request tracing and access logging are
// handled by middleware before a handler runs.
package http
