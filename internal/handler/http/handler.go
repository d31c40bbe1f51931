// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Handler serves the diagnostic HTTP surface of the server process.
type Handler struct {
	services *service.Services
	version  string
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler builds a Handler. gatherer is the registry exposed on /metrics.
func NewHandler(services *service.Services, version string, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		gatherer: gatherer,
		logger:   logger,
	}
}
