// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingWorker is a test implementation of the Worker interface that tracks
// how many times Run was called.
type countingWorker struct {
	runs atomic.Int64
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_RunsAllAndStopsOnCancel(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewWorkers(w1, w2, w3).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after context cancellation")
	}
}

func TestWorkers_RunEmpty(t *testing.T) {
	// must not panic or block
	NewWorkers().Run(context.Background())
}

func TestSyncWorker_SyncsImmediatelyAndOnTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockSyncService(ctrl)

	var syncs atomic.Int64
	svc.EXPECT().PerformFullSync(gomock.Any(), "acc-1").DoAndReturn(
		func(context.Context, string) error {
			syncs.Add(1)
			return nil
		}).MinTimes(3)

	w := NewSyncWorker(svc, "acc-1", 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return syncs.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	<-done
}

func TestSyncWorker_KeepsTickingAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockSyncService(ctrl)

	var syncs atomic.Int64
	svc.EXPECT().PerformFullSync(gomock.Any(), "acc-1").DoAndReturn(
		func(context.Context, string) error {
			syncs.Add(1)
			return assert.AnError
		}).MinTimes(2)

	w := NewSyncWorker(svc, "acc-1", 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return syncs.Load() >= 2 }, time.Second, time.Millisecond)
}

func TestSyncWorker_DefaultsInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockSyncService(ctrl)

	w := NewSyncWorker(svc, "acc-1", 0, logger.Nop()).(*syncWorker)

	assert.Equal(t, 5*time.Minute, w.interval)
}

func TestConnectivityWorker_FlushesOnReconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockSyncService(ctrl)
	monitor := mock.NewMockMonitor(ctrl)

	events := make(chan bool, 1)
	monitor.EXPECT().Events().Return((<-chan bool)(events)).AnyTimes()

	flushed := make(chan struct{})
	svc.EXPECT().ProcessPendingChanges(gomock.Any()).DoAndReturn(
		func(context.Context) (int, error) {
			close(flushed)
			return 2, nil
		})

	w := NewConnectivityWorker(svc, monitor, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	events <- true

	select {
	case <-flushed:
	case <-time.After(time.Second):
		t.Fatal("reconnect did not trigger a queue flush")
	}
}

func TestConnectivityWorker_MarksOfflineOnDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockSyncService(ctrl)
	monitor := mock.NewMockMonitor(ctrl)

	events := make(chan bool, 1)
	monitor.EXPECT().Events().Return((<-chan bool)(events)).AnyTimes()

	marked := make(chan struct{})
	svc.EXPECT().MarkOffline().Do(func() { close(marked) })

	w := NewConnectivityWorker(svc, monitor, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	events <- false

	select {
	case <-marked:
	case <-time.After(time.Second):
		t.Fatal("disconnect did not mark the engine offline")
	}
}

func TestConnectivityWorker_StopsOnClosedEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockSyncService(ctrl)
	monitor := mock.NewMockMonitor(ctrl)

	events := make(chan bool)
	monitor.EXPECT().Events().Return((<-chan bool)(events)).AnyTimes()

	w := NewConnectivityWorker(svc, monitor, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run(context.Background())
		close(done)
	}()

	close(events)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop when the event stream closed")
	}
}
