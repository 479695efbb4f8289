// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-family-organizer/internal/config"
	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/utils"
	"github.com/MKhiriev/go-family-organizer/models"
	"github.com/go-resty/resty/v2"
)

// NewHTTPClient builds the shared HTTP client used by all entity gateways. It
// normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the request timeout. All gateways share one client so they share
// one connection pool.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPClient(adapterCfg config.Adapter) (*utils.HTTPClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type httpGateway[T models.Record] struct {
	client   *utils.HTTPClient
	session  *Session
	resource models.EntityType

	logger *logger.Logger
}

// NewHTTPGateway constructs an HTTP/REST implementation of [Gateway] for one
// entity resource. The resource name doubles as the URL path segment, so the
// gateway for [models.EntityMedication] talks to /api/medications.
func NewHTTPGateway[T models.Record](client *utils.HTTPClient, session *Session, resource models.EntityType, logger *logger.Logger) Gateway[T] {
	return &httpGateway[T]{client: client, session: session, resource: resource, logger: logger}
}

// List implements [Gateway]. It GETs /api/{resource}?account_id={accountID}
// and decodes the response body into a slice of records. Requires a valid
// bearer token. Returns [ErrUnreachable] (wrapped) if no HTTP response was
// received, and [ErrDecodeResponse] (wrapped) if the body is not a JSON array.
// A single undecodable element is logged and skipped; the rest of the list
// still merges.
func (g *httpGateway[T]) List(ctx context.Context, accountID string) ([]T, error) {
	resp, err := g.authedRequest(ctx).
		SetQueryParam("account_id", accountID).
		Get(g.resourcePath())
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", ErrUnreachable, g.resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list %s: %w", g.resource, err)
	}

	var raw []json.RawMessage
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", ErrDecodeResponse, g.resource, err)
	}

	items := make([]T, 0, len(raw))
	for i, body := range raw {
		var item T
		if err = json.Unmarshal(body, &item); err != nil {
			g.logger.Warn().Err(err).
				Str("resource", string(g.resource)).
				Int("index", i).
				Msg("skipping undecodable record in list response")
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// Create implements [Gateway]. It POSTs rec to /api/{resource}. The record is
// sent with its client-generated ID so that retries of the same queued change
// are idempotent on the server side.
func (g *httpGateway[T]) Create(ctx context.Context, rec T) error {
	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		Post(g.resourcePath())
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrUnreachable, g.resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("create %s: %w", g.resource, err)
	}

	return nil
}

// Update implements [Gateway]. It PUTs rec to /api/{resource}/{id}. Returns
// [ErrConflict] (wrapped) on HTTP 409 and [ErrNotFound] (wrapped) on HTTP 404.
func (g *httpGateway[T]) Update(ctx context.Context, rec T) error {
	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		Put(g.recordPath(rec.Meta().ID))
	if err != nil {
		return fmt.Errorf("%w: update %s: %w", ErrUnreachable, g.resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("update %s: %w", g.resource, err)
	}

	return nil
}

// Delete implements [Gateway]. It sends DELETE /api/{resource}/{id}. The
// backend soft-deletes the record so other devices learn about the deletion on
// their next pull. Returns [ErrNotFound] (wrapped) on HTTP 404.
func (g *httpGateway[T]) Delete(ctx context.Context, accountID, id string) error {
	resp, err := g.authedRequest(ctx).
		SetQueryParam("account_id", accountID).
		Delete(g.recordPath(id))
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrUnreachable, g.resource, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete %s: %w", g.resource, err)
	}

	return nil
}

func (g *httpGateway[T]) resourcePath() string {
	return "/api/" + string(g.resource)
}

func (g *httpGateway[T]) recordPath(id string) string {
	return g.resourcePath() + "/" + url.PathEscape(id)
}

func (g *httpGateway[T]) authedRequest(ctx context.Context) *resty.Request {
	req := g.client.R().SetContext(ctx)
	if token := g.session.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
