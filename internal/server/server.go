// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-family-organizer/internal/config"
	"github.com/MKhiriev/go-family-organizer/internal/logger"
)

// shutdownTimeout bounds how long open connections may linger once the
// application is asked to stop.
const shutdownTimeout = 5 * time.Second

// StatusServer runs the status endpoint as a background worker.
type StatusServer struct {
	server *http.Server

	logger *logger.Logger
}

// NewStatusServer creates the status endpoint server listening on the address
// from cfg.
func NewStatusServer(handler *Handler, cfg config.Status, logger *logger.Logger) *StatusServer {
	logger.Info().Str("address", cfg.Address).Msg("creating status server...")
	return &StatusServer{
		server: &http.Server{
			Addr:    cfg.Address,
			Handler: handler.Init(),
		},
		logger: logger,
	}
}

// Run serves until ctx is cancelled, then shuts the listener down gracefully.
func (s *StatusServer) Run(ctx context.Context) {
	errs := make(chan error, 1)
	go func() {
		errs <- s.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("status server shutdown failed")
		}
		<-errs
		s.logger.Info().Msg("status server stopped")
	case err := <-errs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("status server failed")
		}
	}
}
