// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/utils"
)

// getServerStatus reports the host and service state as JSON.
func (h *Handler) getServerStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.Lifecycle.Status(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("encode status")
	}
}
