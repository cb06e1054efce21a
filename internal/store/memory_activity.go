// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/models"
)

// memoryActivityRepository keeps the catalog in process memory. All access
// goes through mu, so a check and the following write are atomic.
type memoryActivityRepository struct {
	mu      sync.RWMutex
	catalog models.Catalog

	logger *logger.Logger
}

// NewMemoryActivityRepository constructs an [ActivityRepository] holding a
// private copy of seed.
func NewMemoryActivityRepository(seed models.Catalog, logger *logger.Logger) ActivityRepository {
	logger.Debug().Int("activities", seed.Len()).Msg("creating in-memory activity repository")
	return &memoryActivityRepository{
		catalog: cloneCatalog(seed),
		logger:  logger,
	}
}

func (r *memoryActivityRepository) List(ctx context.Context) (models.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneCatalog(r.catalog), nil
}

func (r *memoryActivityRepository) AddParticipant(ctx context.Context, activity, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.catalog.Get(activity)
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	if a.SpotsLeft() <= 0 {
		return ErrActivityFull
	}

	a.Participants = append(slices.Clone(a.Participants), email)
	r.catalog.Add(activity, a)

	logger.FromContext(ctx).Debug().
		Str("activity", activity).
		Int("participants", len(a.Participants)).
		Msg("participant added")
	return nil
}

func (r *memoryActivityRepository) RemoveParticipant(ctx context.Context, activity, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.catalog.Get(activity)
	if !ok {
		return ErrActivityNotFound
	}

	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return ErrNotSignedUp
	}

	a.Participants = slices.Delete(slices.Clone(a.Participants), idx, idx+1)
	r.catalog.Add(activity, a)

	logger.FromContext(ctx).Debug().
		Str("activity", activity).
		Int("participants", len(a.Participants)).
		Msg("participant removed")
	return nil
}

func cloneCatalog(src models.Catalog) models.Catalog {
	dst := models.NewCatalog()
	for _, name := range src.Names {
		a := src.Activities[name]
		a.Participants = slices.Clone(a.Participants)
		if a.Participants == nil {
			a.Participants = []string{}
		}
		dst.Add(name, a)
	}
	return dst
}
