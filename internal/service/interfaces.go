// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the activity server and the
// thin service layer of the terminal client.
//
// Server side: [ActivityService] enforces the enrollment rules on top of a
// store.ActivityRepository and [AppInfoService] reports the build version.
// Client side: [ClientActivityService] calls the server adapter and maps its
// errors onto the store sentinels, so both binaries speak the same error
// vocabulary.
package service

import (
	"context"

	"github.com/MKhiriev/go-activity-signup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ActivityService is the server-side use case layer for activities.
type ActivityService interface {
	// ListActivities returns the full catalog in catalog order.
	ListActivities(ctx context.Context) (models.Catalog, error)

	// Signup enrolls reg.Email in reg.Activity and returns the confirmation
	// message, e.g. "Signed up a@mergington.edu for Chess Club".
	Signup(ctx context.Context, reg models.Registration) (string, error)

	// Unregister withdraws reg.Email from reg.Activity and returns the
	// confirmation message.
	Unregister(ctx context.Context, reg models.Registration) (string, error)
}

// ActivityServiceWrapper defines middleware composition for ActivityService.
// Implementations wrap an existing ActivityService to add behavior such as
// validation.
type ActivityServiceWrapper interface {
	Wrap(ActivityService) ActivityService
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
