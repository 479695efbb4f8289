// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-family-organizer/internal/adapter"
	"github.com/MKhiriev/go-family-organizer/internal/config"
	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/mock"
	"github.com/MKhiriev/go-family-organizer/internal/utils"
	"github.com/MKhiriev/go-family-organizer/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sessionWithExpiry(t *testing.T, expiresIn time.Duration) *adapter.Session {
	t.Helper()

	claims := jwt.MapClaims{"sub": "acc-1", "exp": time.Now().Add(expiresIn).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)

	return adapter.NewSession(token)
}

type syncFixture struct {
	svc       *syncService
	queue     *mock.MockPendingChangeRepository
	metadata  *mock.MockSyncMetadataRepository
	monitor   *mock.MockMonitor
	schedules *mock.MockRecordStore[*models.MedicationSchedule]
	logs      *mock.MockMedicationLogStore
	syncers   []*mock.MockEntitySync
}

func newSyncFixture(t *testing.T, ctrl *gomock.Controller, entities ...models.EntityType) *syncFixture {
	t.Helper()

	f := &syncFixture{
		queue:     mock.NewMockPendingChangeRepository(ctrl),
		metadata:  mock.NewMockSyncMetadataRepository(ctrl),
		monitor:   mock.NewMockMonitor(ctrl),
		schedules: mock.NewMockRecordStore[*models.MedicationSchedule](ctrl),
		logs:      mock.NewMockMedicationLogStore(ctrl),
	}

	ordered := make([]EntitySync, 0, len(entities))
	for _, entity := range entities {
		syncer := mock.NewMockEntitySync(ctrl)
		syncer.EXPECT().Type().Return(entity).AnyTimes()
		f.syncers = append(f.syncers, syncer)
		ordered = append(ordered, syncer)
	}
	registry := registryOf(ordered...)

	ids := utils.NewUUIDGenerator()
	log := logger.Nop()
	cfg := config.Sync{Interval: time.Second, RetryLimit: 5, CompletedDisplayDelay: 40 * time.Millisecond}

	f.svc = &syncService{
		registry: registry,
		pending:  newPendingProcessor(f.queue, registry, cfg.RetryLimit, log),
		derive:   newDerivation(f.schedules, f.logs, f.queue, ids, log),
		queue:    f.queue,
		metadata: f.metadata,
		session:  sessionWithExpiry(t, time.Hour),
		monitor:  f.monitor,
		status:   newStatusTracker(),
		ids:      ids,
		cfg:      cfg,
		logger:   log,
	}

	return f
}

func TestPerformFullSync_OfflineShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityMedication)

	// no storage or gateway expectations: nothing must be touched offline
	f.monitor.EXPECT().Online().Return(false)

	err := f.svc.PerformFullSync(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, models.SyncStateOffline, f.svc.Status().State)
}

func TestPerformFullSync_ExpiredSessionFailsFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityMedication)
	f.svc.session = sessionWithExpiry(t, -time.Hour)

	f.monitor.EXPECT().Online().Return(true)

	err := f.svc.PerformFullSync(context.Background(), "acc-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, models.SyncStateFailed, f.svc.Status().State)
}

func TestPerformFullSync_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityProfile, models.EntityMedication)

	f.monitor.EXPECT().Online().Return(true).AnyTimes()

	change := pendingChange("c1", models.EntityMedication, 0)
	f.queue.EXPECT().ListOrdered(gomock.Any()).Return([]models.PendingChange{change}, nil)
	f.syncers[1].EXPECT().Push(gomock.Any(), change).Return(nil)
	f.queue.EXPECT().Resolve(gomock.Any(), change).Return(nil)

	gomock.InOrder(
		f.syncers[0].EXPECT().Pull(gomock.Any(), "acc-1").Return(2, nil),
		f.syncers[1].EXPECT().Pull(gomock.Any(), "acc-1").Return(1, nil),
	)

	f.schedules.EXPECT().List(gomock.Any(), "acc-1").Return(nil, nil)

	var savedMeta models.SyncMetadata
	f.metadata.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, meta models.SyncMetadata) error {
			savedMeta = meta
			return nil
		})

	err := f.svc.PerformFullSync(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, "acc-1", savedMeta.AccountID)
	assert.WithinDuration(t, time.Now().UTC(), savedMeta.LastSyncedAt, time.Minute)

	status := f.svc.Status()
	assert.Equal(t, models.SyncStateCompleted, status.State)
	assert.Equal(t, 4, status.ChangeCount, "1 pushed + 3 pulled")

	// completed resets to idle after the display delay
	assert.Eventually(t, func() bool {
		return f.svc.Status().State == models.SyncStateIdle
	}, time.Second, 10*time.Millisecond)
}

func TestPerformFullSync_PullFailureAbortsRemainingPhases(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityProfile, models.EntityMedication)

	f.monitor.EXPECT().Online().Return(true).AnyTimes()
	f.queue.EXPECT().ListOrdered(gomock.Any()).Return(nil, nil)

	// second pull, derivation and metadata write must never happen
	f.syncers[0].EXPECT().Pull(gomock.Any(), "acc-1").Return(0, ErrServerUnavailable)

	err := f.svc.PerformFullSync(context.Background(), "acc-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.Equal(t, models.SyncStateFailed, f.svc.Status().State)
	assert.NotEmpty(t, f.svc.Status().Message)
}

func TestPerformFullSync_NetworkLossMidCycleGoesOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityProfile)

	f.monitor.EXPECT().Online().Return(true).AnyTimes()
	f.queue.EXPECT().ListOrdered(gomock.Any()).Return(nil, nil)
	f.syncers[0].EXPECT().Pull(gomock.Any(), "acc-1").Return(0, ErrNetworkUnavailable)

	err := f.svc.PerformFullSync(context.Background(), "acc-1")

	require.NoError(t, err, "losing the network is not a failure")
	assert.Equal(t, models.SyncStateOffline, f.svc.Status().State)
}

func TestPerformFullSync_NewRunCancelsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityProfile)

	f.monitor.EXPECT().Online().Return(true).AnyTimes()
	f.queue.EXPECT().ListOrdered(gomock.Any()).Return(nil, nil).Times(2)

	firstStarted := make(chan struct{})
	gomock.InOrder(
		f.syncers[0].EXPECT().Pull(gomock.Any(), "acc-1").DoAndReturn(
			func(ctx context.Context, _ string) (int, error) {
				close(firstStarted)
				<-ctx.Done()
				return 0, ctx.Err()
			}),
		f.syncers[0].EXPECT().Pull(gomock.Any(), "acc-1").Return(0, nil),
	)

	f.schedules.EXPECT().List(gomock.Any(), "acc-1").Return(nil, nil)
	f.metadata.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- f.svc.PerformFullSync(context.Background(), "acc-1")
	}()

	<-firstStarted
	require.NoError(t, f.svc.PerformFullSync(context.Background(), "acc-1"))

	select {
	case err := <-firstDone:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("superseded run did not finish")
	}

	assert.Equal(t, models.SyncStateCompleted, f.svc.Status().State)
}

func TestProcessPendingChanges_OfflineIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityMedication)

	f.monitor.EXPECT().Online().Return(false)

	pushed, err := f.svc.ProcessPendingChanges(context.Background())

	require.NoError(t, err)
	assert.Zero(t, pushed)
}

func TestQueueChange_AppendsAndFlushesAsynchronously(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityMedication)

	f.monitor.EXPECT().Online().Return(true).AnyTimes()

	var queued models.PendingChange
	f.queue.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, change models.PendingChange) error {
			queued = change
			return nil
		})

	flushed := make(chan struct{})
	f.queue.EXPECT().ListOrdered(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.PendingChange, error) {
			close(flushed)
			return nil, nil
		})

	err := f.svc.QueueChange(context.Background(), models.EntityTodoItem, "todo-1", "acc-1", models.ChangeCreate)

	require.NoError(t, err)
	assert.NotEmpty(t, queued.ID)
	assert.Equal(t, models.EntityTodoItem, queued.EntityType)
	assert.Equal(t, "todo-1", queued.EntityID)
	assert.Equal(t, models.ChangeCreate, queued.ChangeType)
	assert.WithinDuration(t, time.Now().UTC(), queued.CreatedAt, time.Minute)

	select {
	case <-flushed:
	case <-time.After(time.Second):
		t.Fatal("queueing while online must trigger an asynchronous flush")
	}
}

func TestQueueChange_OfflineOnlyQueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityMedication)

	f.monitor.EXPECT().Online().Return(false)
	f.queue.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	err := f.svc.QueueChange(context.Background(), models.EntityTodoItem, "todo-1", "acc-1", models.ChangeDelete)

	require.NoError(t, err)
}

func TestMarkOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityMedication)

	f.svc.MarkOffline()

	assert.Equal(t, models.SyncStateOffline, f.svc.Status().State)
}

func TestPendingChangesCount_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityMedication)

	f.queue.EXPECT().Count(gomock.Any()).Return(7, nil)

	count, err := f.svc.PendingChangesCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestSubscribeStatus_ReceivesTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newSyncFixture(t, ctrl, models.EntityMedication)

	ch, cancel := f.svc.SubscribeStatus()
	defer cancel()

	f.svc.MarkOffline()

	select {
	case status := <-ch:
		assert.Equal(t, models.SyncStateOffline, status.State)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the status update")
	}
}
