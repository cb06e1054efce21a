// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of the activity catalog for the
// development server.
//
// [ActivityRepository] has two implementations: an in-memory repository
// seeded with the default activities, and a SQL repository (PostgreSQL via
// pgx or SQLite via go-sqlite3) whose queries are built with squirrel.
// [NewStorages] picks one from the configured DSN.
package store

import (
	"context"

	"github.com/MKhiriev/go-activity-signup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ActivityRepository persists activities and their participants.
type ActivityRepository interface {
	// List returns every activity in catalog order with participants in
	// enrollment order.
	List(ctx context.Context) (models.Catalog, error)

	// AddParticipant enrolls email in activity.
	//
	// Returns [ErrActivityNotFound], [ErrAlreadySignedUp] or
	// [ErrActivityFull], checked in that order.
	AddParticipant(ctx context.Context, activity, email string) error

	// RemoveParticipant withdraws email from activity.
	//
	// Returns [ErrActivityNotFound] or [ErrNotSignedUp].
	RemoveParticipant(ctx context.Context, activity, email string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
