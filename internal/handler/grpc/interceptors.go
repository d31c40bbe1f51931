// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TraceIDKey is the metadata key carrying the trace id of a call.
const TraceIDKey = "x-trace-id"

func (h *Handler) withTraceID(ctx context.Context, method string) context.Context {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(TraceIDKey); len(v) > 0 && v[0] != "" {
			traceID = v[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).Str("rpc", method)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDKey, traceID))
	return l.WithContext(ctx)
}

func (h *Handler) unaryTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	return handler(h.withTraceID(ctx, info.FullMethod), req)
}

func (h *Handler) unaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	h.observe(ctx, info.FullMethod, start, err)
	return resp, err
}

func (h *Handler) streamTraceID(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	return handler(srv, &tracedStream{ServerStream: ss, ctx: h.withTraceID(ss.Context(), info.FullMethod)})
}

func (h *Handler) streamLogging(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	err := handler(srv, ss)
	h.observe(ss.Context(), info.FullMethod, start, err)
	return err
}

func (h *Handler) observe(ctx context.Context, method string, start time.Time, err error) {
	code := status.Code(err)
	duration := time.Since(start)

	h.metrics.RPCRequests.WithLabelValues(method, code.String()).Inc()
	h.metrics.RPCDurationSec.WithLabelValues(method).Observe(duration.Seconds())

	log := logger.FromContext(ctx)
	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Str("code", code.String()).
		Dur("duration", duration).
		Send()
}

type tracedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *tracedStream) Context() context.Context {
	return s.ctx
}
