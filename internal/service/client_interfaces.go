// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-activity-signup/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientActivityService is what the terminal UI calls for every network
// operation. Failures keep the adapter error in their chain, so callers can
// still reach the *adapter.APIError and its detail.
type ClientActivityService interface {
	// Catalog fetches the current activity catalog from the server.
	Catalog(ctx context.Context) (models.Catalog, error)

	// Enroll signs email up for activity and returns the server message.
	Enroll(ctx context.Context, activity, email string) (string, error)

	// Withdraw removes email from activity and returns the server message.
	Withdraw(ctx context.Context, activity, email string) (string, error)
}
