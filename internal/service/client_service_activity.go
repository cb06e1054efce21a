// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-activity-signup/internal/adapter"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/models"
)

type clientActivityService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientActivityService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientActivityService {
	return &clientActivityService{adapter: serverAdapter, logger: logger}
}

func (s *clientActivityService) Catalog(ctx context.Context) (models.Catalog, error) {
	catalog, err := s.adapter.ListActivities(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientActivityService.Catalog").Msg("error loading activities")
		return models.Catalog{}, fmt.Errorf("load activities: %w", mapAdapterError(err))
	}

	s.logger.Debug().Int("activities", catalog.Len()).Msg("activities loaded")
	return catalog, nil
}

func (s *clientActivityService) Enroll(ctx context.Context, activity, email string) (string, error) {
	msg, err := s.adapter.Signup(ctx, activity, email)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientActivityService.Enroll").Str("activity", activity).Msg("error signing up")
		return "", fmt.Errorf("sign up: %w", mapAdapterError(err))
	}

	s.logger.Info().Str("activity", activity).Msg("signed up")
	return msg, nil
}

func (s *clientActivityService) Withdraw(ctx context.Context, activity, email string) (string, error) {
	msg, err := s.adapter.Unregister(ctx, activity, email)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientActivityService.Withdraw").Str("activity", activity).Msg("error unregistering")
		return "", fmt.Errorf("unregister: %w", mapAdapterError(err))
	}

	s.logger.Info().Str("activity", activity).Msg("unregistered")
	return msg, nil
}
