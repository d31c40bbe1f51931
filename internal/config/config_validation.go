// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-remote-service/models"
)

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Service.TickInterval <= 0 || cfg.Service.DeliveryBuffer <= 0 || cfg.Service.KillDelay < 0 {
		return ErrInvalidServiceConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateClient() error {
	if cfg.Client.GRPCAddress == "" || cfg.Client.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	if cfg.Client.ReconnectBase <= 0 || cfg.Client.ReconnectMax < cfg.Client.ReconnectBase {
		return ErrInvalidClientConfigs
	}

	if _, err := models.ParsePolicyFlags(cfg.Client.Policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}

	return nil
}
