// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/store"
	"github.com/MKhiriev/go-family-organizer/models"
	"github.com/sethvargo/go-retry"
)

// pendingProcessor drains the durable queue of outbound local changes in FIFO
// order. Each entry is pushed through its entity's strategy; failures are
// isolated per entry so one broken record never blocks the rest of the queue.
type pendingProcessor struct {
	queue      store.PendingChangeRepository
	registry   *Registry
	retryLimit int

	logger *logger.Logger
}

func newPendingProcessor(queue store.PendingChangeRepository, registry *Registry, retryLimit int, log *logger.Logger) *pendingProcessor {
	return &pendingProcessor{queue: queue, registry: registry, retryLimit: retryLimit, logger: log}
}

// Process pushes every queued change once, in CreatedAt order. Entries past
// the retry ceiling, entries whose local record is gone and entries of an
// unknown entity type are discarded. Authentication failure and connectivity
// loss abort the drain with the queue intact; every other failure increments
// the entry's retry count and moves on. Returns the number of successfully
// pushed changes.
func (p *pendingProcessor) Process(ctx context.Context) (int, error) {
	changes, err := p.queue.ListOrdered(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending changes: %w", err)
	}

	pushed := 0
	for _, change := range changes {
		if err = ctx.Err(); err != nil {
			return pushed, err
		}

		if change.RetryCount >= p.retryLimit {
			p.logger.Warn().
				Str("change_id", change.ID).
				Str("entity", string(change.EntityType)).
				Str("entity_id", change.EntityID).
				Str("change_type", string(change.ChangeType)).
				Int("retry_count", change.RetryCount).
				Str("last_error", change.LastError).
				Msg("pending change exceeded retry ceiling, discarding")
			if err = p.queue.Discard(ctx, change.ID); err != nil {
				return pushed, fmt.Errorf("discard exhausted change %s: %w", change.ID, err)
			}
			continue
		}

		syncer, ok := p.registry.Lookup(change.EntityType)
		if !ok {
			p.logger.Warn().Str("change_id", change.ID).Str("entity", string(change.EntityType)).Msg("pending change for unknown entity type, discarding")
			if err = p.queue.Discard(ctx, change.ID); err != nil {
				return pushed, fmt.Errorf("discard unknown-entity change %s: %w", change.ID, err)
			}
			continue
		}

		err = p.pushWithBackoff(ctx, syncer, change)
		switch {
		case err == nil:
			if err = p.queue.Resolve(ctx, change); err != nil {
				return pushed, fmt.Errorf("resolve change %s: %w", change.ID, err)
			}
			pushed++

		case errors.Is(err, store.ErrRecordNotFound):
			// The record was deleted locally after the change was queued.
			p.logger.Debug().Str("change_id", change.ID).Str("entity_id", change.EntityID).Msg("pending change superseded, discarding")
			if err = p.queue.Discard(ctx, change.ID); err != nil {
				return pushed, fmt.Errorf("discard superseded change %s: %w", change.ID, err)
			}

		case errors.Is(err, ErrNotAuthenticated), errors.Is(err, ErrNetworkUnavailable):
			return pushed, err

		default:
			p.logger.Warn().Err(err).Str("change_id", change.ID).Str("entity", string(change.EntityType)).Msg("pending change push failed")
			if failErr := p.queue.Fail(ctx, change.ID, err.Error()); failErr != nil {
				return pushed, fmt.Errorf("record push failure for change %s: %w", change.ID, failErr)
			}
		}
	}

	return pushed, nil
}

// pushWithBackoff wraps a single push in a short fibonacci backoff. Only a
// failing-but-reachable backend is worth the in-process retries; everything
// else fails through to the caller immediately.
func (p *pendingProcessor) pushWithBackoff(ctx context.Context, syncer EntitySync, change models.PendingChange) error {
	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(200*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := syncer.Push(ctx, change)
		if errors.Is(err, ErrServerUnavailable) {
			return retry.RetryableError(err)
		}
		return err
	})
}
