// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-activity-signup/internal/config"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/internal/utils"
	"github.com/MKhiriev/go-activity-signup/models"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace id to the server.
const TraceIDHeader = "X-Trace-ID"

const (
	activitiesPath = "/activities"
	signupPath     = "/activities/{name}/signup"
	unregisterPath = "/activities/{name}/unregister"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] bound to adapterCfg.HTTPAddress.
//
// Returns an error if the address is empty.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if baseURL == "" {
		return nil, fmt.Errorf("invalid adapter http address: %w", config.ErrInvalidAdapterConfigs)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

// ListActivities implements [ServerAdapter]. It GETs /activities and decodes
// the name → activity object in server order.
func (h *httpServerAdapter) ListActivities(ctx context.Context) (models.Catalog, error) {
	resp, err := h.request(ctx).Get(activitiesPath)
	if err != nil {
		return models.Catalog{}, transportError("list activities request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Catalog{}, err
	}

	var catalog models.Catalog
	if err = json.Unmarshal(resp.Body(), &catalog); err != nil {
		return models.Catalog{}, fmt.Errorf("%w: activities: %w", ErrDecodeResponse, err)
	}

	return catalog, nil
}

// Signup implements [ServerAdapter]. It POSTs to
// /activities/{name}/signup?email=... with both values URL-encoded.
func (h *httpServerAdapter) Signup(ctx context.Context, activity, email string) (string, error) {
	resp, err := h.request(ctx).
		SetPathParam("name", activity).
		SetQueryParam("email", email).
		Post(signupPath)
	if err != nil {
		return "", transportError("signup request", err)
	}

	return decodeMessage(resp)
}

// Unregister implements [ServerAdapter]. It sends DELETE to
// /activities/{name}/unregister?email=... with both values URL-encoded.
func (h *httpServerAdapter) Unregister(ctx context.Context, activity, email string) (string, error) {
	resp, err := h.request(ctx).
		SetPathParam("name", activity).
		SetQueryParam("email", email).
		Delete(unregisterPath)
	if err != nil {
		return "", transportError("unregister request", err)
	}

	return decodeMessage(resp)
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.ids.Generate()
	}

	h.logger.Debug().Str(logger.TraceIDField, traceID).Msg("outbound request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
}

func decodeMessage(resp *resty.Response) (string, error) {
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	var msg models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &msg); err != nil {
		return "", fmt.Errorf("%w: message: %w", ErrDecodeResponse, err)
	}

	return msg.Message, nil
}
