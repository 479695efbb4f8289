// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server exposes the local status endpoint: a small HTTP surface on
// the loopback interface that lets the UI read the current sync state and
// trigger an immediate sync cycle.
package server

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/service"
	"github.com/MKhiriev/go-family-organizer/internal/utils"
	"github.com/MKhiriev/go-family-organizer/models"
)

// Handler serves the status endpoint's routes.
type Handler struct {
	sync      service.SyncService
	accountID string

	logger *logger.Logger
}

// NewHandler creates the status endpoint handler for the given account.
func NewHandler(sync service.SyncService, accountID string, logger *logger.Logger) *Handler {
	logger.Info().Msg("status handler created")
	return &Handler{
		sync:      sync,
		accountID: accountID,
		logger:    logger,
	}
}

// statusResponse is the GET /api/sync/status payload.
type statusResponse struct {
	Status  models.SyncStatus `json:"status"`
	Pending int               `json:"pending"`
}

// status reports the current sync status together with the number of queued
// local changes.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	pending, err := h.sync.PendingChangesCount(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("counting pending changes failed")
		if _, err := utils.WriteJSON(w, map[string]string{"error": "internal error"}, http.StatusInternalServerError); err != nil {
			log.Error().Err(err).Msg("writing error response failed")
		}
		return
	}

	resp := statusResponse{
		Status:  h.sync.Status(),
		Pending: pending,
	}
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("writing status response failed")
	}
}

// run triggers a full sync cycle without waiting for it to finish. The cycle
// runs in the background; its result becomes observable via the status route.
func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// detach from the request context so the cycle survives the response
	go func() {
		if err := h.sync.PerformFullSync(h.logger.WithContext(context.Background()), h.accountID); err != nil {
			h.logger.Warn().Err(err).Msg("requested full sync failed")
		}
	}()

	log.Info().Msg("full sync requested")
	if _, err := utils.WriteJSON(w, map[string]string{"status": "accepted"}, http.StatusAccepted); err != nil {
		log.Error().Err(err).Msg("writing run response failed")
	}
}
