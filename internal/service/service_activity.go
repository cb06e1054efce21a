// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-activity-signup/internal/app"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/internal/store"
	"github.com/MKhiriev/go-activity-signup/models"
)

type activityService struct {
	activityRepository store.ActivityRepository

	logger *logger.Logger
}

func NewActivityService(activityRepository store.ActivityRepository, logger *logger.Logger) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		logger:             logger,
	}
}

func (s *activityService) ListActivities(ctx context.Context) (models.Catalog, error) {
	return s.activityRepository.List(ctx)
}

func (s *activityService) Signup(ctx context.Context, reg models.Registration) (string, error) {
	if err := s.activityRepository.AddParticipant(ctx, reg.Activity, reg.Email); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info().Str("activity", reg.Activity).Msg("participant signed up")
	return app.SignedUpMessage(reg.Email, reg.Activity), nil
}

func (s *activityService) Unregister(ctx context.Context, reg models.Registration) (string, error) {
	if err := s.activityRepository.RemoveParticipant(ctx, reg.Activity, reg.Email); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info().Str("activity", reg.Activity).Msg("participant unregistered")
	return app.UnregisteredMessage(reg.Email, reg.Activity), nil
}
