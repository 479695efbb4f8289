// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package netmon tracks whether the backend is reachable.
//
// The monitor probes the backend address on a fixed interval and publishes
// online/offline transitions on a channel. The sync layer consumes the
// transitions to flush queued changes when connectivity returns and to mark
// itself offline when it drops.
package netmon

import (
	"context"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-family-organizer/internal/config"
	"github.com/MKhiriev/go-family-organizer/internal/logger"
)

//go:generate mockgen -source=netmon.go -destination=../mock/netmon_mock.go -package=mock

// Monitor reports backend reachability.
type Monitor interface {
	// Online returns the most recently observed connectivity state.
	Online() bool

	// Events returns the channel on which online/offline transitions are
	// published. Only state changes are sent; the channel is buffered and
	// stale transitions are dropped rather than blocking the prober.
	Events() <-chan bool

	// Run probes connectivity on the configured interval until ctx is
	// cancelled. The first probe fires immediately.
	Run(ctx context.Context)
}

// Prober checks reachability of address once, within timeout.
type Prober func(ctx context.Context, address string, timeout time.Duration) bool

// DialProber is the default [Prober]: it attempts a TCP connection to address.
func DialProber(ctx context.Context, address string, timeout time.Duration) bool {
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dialCtx, "tcp", address)
	if err != nil {
		return false
	}
	_ = conn.Close()

	return true
}

type dialMonitor struct {
	address  string
	interval time.Duration
	timeout  time.Duration
	probe    Prober

	mu     sync.RWMutex
	online bool

	events chan bool
	logger *logger.Logger
}

// NewMonitor constructs a [Monitor] that probes the host of the backend HTTP
// address from adapterCfg using the probe interval and timeout from syncCfg.
// A custom prober may be supplied for tests; pass nil to use [DialProber].
func NewMonitor(adapterCfg config.Adapter, syncCfg config.Sync, probe Prober, log *logger.Logger) Monitor {
	if probe == nil {
		probe = DialProber
	}

	return &dialMonitor{
		address:  probeAddress(adapterCfg.HTTPAddress),
		interval: syncCfg.ProbeInterval,
		timeout:  syncCfg.ProbeTimeout,
		probe:    probe,
		events:   make(chan bool, 1),
		logger:   log,
	}
}

// probeAddress extracts the host:port to dial from the backend HTTP address.
// Port 80 is assumed when the address carries no explicit port.
func probeAddress(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	host := u.Host
	if u.Port() == "" {
		host = net.JoinHostPort(u.Hostname(), "80")
	}

	return host
}

func (m *dialMonitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

func (m *dialMonitor) Events() <-chan bool {
	return m.events
}

func (m *dialMonitor) Run(ctx context.Context) {
	m.logger.Info().Str("address", m.address).Dur("interval", m.interval).Msg("connectivity monitor started")

	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("connectivity monitor stopped")
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *dialMonitor) check(ctx context.Context) {
	online := m.probe(ctx, m.address, m.timeout)

	m.mu.Lock()
	changed := online != m.online
	m.online = online
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Info().Bool("online", online).Msg("connectivity changed")

	// Replace a stale unconsumed transition with the latest one.
	select {
	case m.events <- online:
	default:
		select {
		case <-m.events:
		default:
		}
		m.events <- online
	}
}
