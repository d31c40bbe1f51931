// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-remote-service/internal/config"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/go-resty/resty/v2"
)

type httpStatusAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPStatusAdapter builds a [StatusAdapter] for cfg.HTTPAddress.
func NewHTTPStatusAdapter(cfg config.Client, log *logger.Logger) (StatusAdapter, error) {
	baseURL := strings.TrimRight(cfg.HTTPAddress, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: empty HTTP address", ErrInvalidArgument)
	}
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpStatusAdapter{client: cli, logger: log}, nil
}

func (h *httpStatusAdapter) Status(ctx context.Context) (models.ServerStatus, error) {
	var status models.ServerStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&status).
		Get("/api/status")
	if err != nil {
		return models.ServerStatus{}, fmt.Errorf("status request: %w: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerStatus{}, err
	}

	return status, nil
}

func (h *httpStatusAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
