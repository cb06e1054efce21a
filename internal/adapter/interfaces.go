// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the terminal client uses to
// talk to the activity server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. Non-2xx responses come back as [*APIError] wrapping one of
// the status sentinels in errors.go, and failures that never produced a
// response wrap [ErrTransport], so callers can use [errors.Is] and
// [errors.As] without looking at resty types.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-activity-signup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the activity
// server.
type ServerAdapter interface {
	// ListActivities fetches the full catalog, preserving the order in which
	// the server listed the activities.
	ListActivities(ctx context.Context) (models.Catalog, error)

	// Signup enrolls email in the named activity and returns the server
	// confirmation message.
	Signup(ctx context.Context, activity, email string) (string, error)

	// Unregister removes email from the named activity and returns the
	// server confirmation message.
	Unregister(ctx context.Context, activity, email string) (string, error)
}
