// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/mock"
	"github.com/MKhiriev/go-family-organizer/internal/store"
	"github.com/MKhiriev/go-family-organizer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func registryOf(syncers ...EntitySync) *Registry {
	byType := make(map[models.EntityType]EntitySync, len(syncers))
	for _, es := range syncers {
		byType[es.Type()] = es
	}
	return &Registry{ordered: syncers, byType: byType}
}

func pendingChange(id string, entity models.EntityType, retries int) models.PendingChange {
	return models.PendingChange{
		ID:         id,
		EntityType: entity,
		EntityID:   "rec-" + id,
		AccountID:  "acc-1",
		ChangeType: models.ChangeUpdate,
		CreatedAt:  time.Now().UTC(),
		RetryCount: retries,
	}
}

func newTestProcessor(t *testing.T, ctrl *gomock.Controller, syncers ...EntitySync) (*pendingProcessor, *mock.MockPendingChangeRepository) {
	t.Helper()
	queue := mock.NewMockPendingChangeRepository(ctrl)
	return newPendingProcessor(queue, registryOf(syncers...), 5, logger.Nop()), queue
}

func TestProcess_EmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, queue := newTestProcessor(t, ctrl)

	queue.EXPECT().ListOrdered(gomock.Any()).Return(nil, nil)

	pushed, err := p.Process(context.Background())

	require.NoError(t, err)
	assert.Zero(t, pushed)
}

func TestProcess_PushesInOrderAndResolves(t *testing.T) {
	ctrl := gomock.NewController(t)

	syncer := mock.NewMockEntitySync(ctrl)
	syncer.EXPECT().Type().Return(models.EntityMedication).AnyTimes()
	p, queue := newTestProcessor(t, ctrl, syncer)

	first := pendingChange("c1", models.EntityMedication, 0)
	second := pendingChange("c2", models.EntityMedication, 0)

	queue.EXPECT().ListOrdered(gomock.Any()).Return([]models.PendingChange{first, second}, nil)
	gomock.InOrder(
		syncer.EXPECT().Push(gomock.Any(), first).Return(nil),
		queue.EXPECT().Resolve(gomock.Any(), first).Return(nil),
		syncer.EXPECT().Push(gomock.Any(), second).Return(nil),
		queue.EXPECT().Resolve(gomock.Any(), second).Return(nil),
	)

	pushed, err := p.Process(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, pushed)
}

func TestProcess_DiscardsOverRetryCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)

	syncer := mock.NewMockEntitySync(ctrl)
	syncer.EXPECT().Type().Return(models.EntityMedication).AnyTimes()
	p, queue := newTestProcessor(t, ctrl, syncer)

	exhausted := pendingChange("c1", models.EntityMedication, 5)

	queue.EXPECT().ListOrdered(gomock.Any()).Return([]models.PendingChange{exhausted}, nil)
	queue.EXPECT().Discard(gomock.Any(), "c1").Return(nil)

	pushed, err := p.Process(context.Background())

	require.NoError(t, err)
	assert.Zero(t, pushed)
}

func TestProcess_DiscardsSupersededEntry(t *testing.T) {
	ctrl := gomock.NewController(t)

	syncer := mock.NewMockEntitySync(ctrl)
	syncer.EXPECT().Type().Return(models.EntityMedication).AnyTimes()
	p, queue := newTestProcessor(t, ctrl, syncer)

	change := pendingChange("c1", models.EntityMedication, 0)

	queue.EXPECT().ListOrdered(gomock.Any()).Return([]models.PendingChange{change}, nil)
	syncer.EXPECT().Push(gomock.Any(), change).Return(store.ErrRecordNotFound)
	queue.EXPECT().Discard(gomock.Any(), "c1").Return(nil)

	pushed, err := p.Process(context.Background())

	require.NoError(t, err)
	assert.Zero(t, pushed)
}

func TestProcess_DiscardsUnknownEntityType(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, queue := newTestProcessor(t, ctrl)

	change := pendingChange("c1", models.EntityType("widgets"), 0)

	queue.EXPECT().ListOrdered(gomock.Any()).Return([]models.PendingChange{change}, nil)
	queue.EXPECT().Discard(gomock.Any(), "c1").Return(nil)

	pushed, err := p.Process(context.Background())

	require.NoError(t, err)
	assert.Zero(t, pushed)
}

func TestProcess_FailureIsIsolatedPerEntry(t *testing.T) {
	ctrl := gomock.NewController(t)

	syncer := mock.NewMockEntitySync(ctrl)
	syncer.EXPECT().Type().Return(models.EntityMedication).AnyTimes()
	p, queue := newTestProcessor(t, ctrl, syncer)

	broken := pendingChange("c1", models.EntityMedication, 0)
	healthy := pendingChange("c2", models.EntityMedication, 0)
	pushErr := errors.New("boom")

	queue.EXPECT().ListOrdered(gomock.Any()).Return([]models.PendingChange{broken, healthy}, nil)
	syncer.EXPECT().Push(gomock.Any(), broken).Return(pushErr)
	queue.EXPECT().Fail(gomock.Any(), "c1", pushErr.Error()).Return(nil)
	syncer.EXPECT().Push(gomock.Any(), healthy).Return(nil)
	queue.EXPECT().Resolve(gomock.Any(), healthy).Return(nil)

	pushed, err := p.Process(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, pushed, "one entry failing must not block the rest of the queue")
}

func TestProcess_RetriesServerUnavailableThenResolves(t *testing.T) {
	ctrl := gomock.NewController(t)

	syncer := mock.NewMockEntitySync(ctrl)
	syncer.EXPECT().Type().Return(models.EntityMedication).AnyTimes()
	p, queue := newTestProcessor(t, ctrl, syncer)

	change := pendingChange("c1", models.EntityMedication, 0)

	queue.EXPECT().ListOrdered(gomock.Any()).Return([]models.PendingChange{change}, nil)
	gomock.InOrder(
		syncer.EXPECT().Push(gomock.Any(), change).Return(ErrServerUnavailable),
		syncer.EXPECT().Push(gomock.Any(), change).Return(ErrServerUnavailable),
		syncer.EXPECT().Push(gomock.Any(), change).Return(nil),
	)
	queue.EXPECT().Resolve(gomock.Any(), change).Return(nil)

	pushed, err := p.Process(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, pushed)
}

func TestProcess_ServerUnavailableExhaustedRecordsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	syncer := mock.NewMockEntitySync(ctrl)
	syncer.EXPECT().Type().Return(models.EntityMedication).AnyTimes()
	p, queue := newTestProcessor(t, ctrl, syncer)

	change := pendingChange("c1", models.EntityMedication, 0)

	queue.EXPECT().ListOrdered(gomock.Any()).Return([]models.PendingChange{change}, nil)
	syncer.EXPECT().Push(gomock.Any(), change).Return(ErrServerUnavailable).Times(3)
	queue.EXPECT().Fail(gomock.Any(), "c1", gomock.Any()).Return(nil)

	pushed, err := p.Process(context.Background())

	require.NoError(t, err)
	assert.Zero(t, pushed)
}

func TestProcess_AbortsOnNetworkLoss(t *testing.T) {
	ctrl := gomock.NewController(t)

	syncer := mock.NewMockEntitySync(ctrl)
	syncer.EXPECT().Type().Return(models.EntityMedication).AnyTimes()
	p, queue := newTestProcessor(t, ctrl, syncer)

	first := pendingChange("c1", models.EntityMedication, 0)
	second := pendingChange("c2", models.EntityMedication, 0)

	queue.EXPECT().ListOrdered(gomock.Any()).Return([]models.PendingChange{first, second}, nil)
	// the second entry is never attempted and the first is not failed:
	// the queue stays intact for the next flush
	syncer.EXPECT().Push(gomock.Any(), first).Return(ErrNetworkUnavailable)

	pushed, err := p.Process(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
	assert.Zero(t, pushed)
}

func TestProcess_AbortsOnAuthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	syncer := mock.NewMockEntitySync(ctrl)
	syncer.EXPECT().Type().Return(models.EntityMedication).AnyTimes()
	p, queue := newTestProcessor(t, ctrl, syncer)

	first := pendingChange("c1", models.EntityMedication, 0)
	second := pendingChange("c2", models.EntityMedication, 0)

	queue.EXPECT().ListOrdered(gomock.Any()).Return([]models.PendingChange{first, second}, nil)
	syncer.EXPECT().Push(gomock.Any(), first).Return(ErrNotAuthenticated)

	pushed, err := p.Process(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, pushed)
}

func TestProcess_StopsOnCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)

	syncer := mock.NewMockEntitySync(ctrl)
	syncer.EXPECT().Type().Return(models.EntityMedication).AnyTimes()
	p, queue := newTestProcessor(t, ctrl, syncer)

	ctx, cancel := context.WithCancel(context.Background())
	queue.EXPECT().ListOrdered(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.PendingChange, error) {
			cancel()
			return []models.PendingChange{pendingChange("c1", models.EntityMedication, 0)}, nil
		})

	pushed, err := p.Process(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, pushed)
}
