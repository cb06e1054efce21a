// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-activity-signup/internal/validators"
	"github.com/MKhiriev/go-activity-signup/models"
)

// ActivityValidationService rejects registrations with a blank activity or
// email before they reach the wrapped service.
type ActivityValidationService struct {
	inner     ActivityService
	validator validators.Validator
}

func NewActivityValidationService() ActivityServiceWrapper {
	return &ActivityValidationService{
		validator: validators.NewRegistrationValidator(),
	}
}

func (v *ActivityValidationService) Wrap(inner ActivityService) ActivityService {
	v.inner = inner
	return v
}

func (v *ActivityValidationService) ListActivities(ctx context.Context) (models.Catalog, error) {
	return v.inner.ListActivities(ctx)
}

func (v *ActivityValidationService) Signup(ctx context.Context, reg models.Registration) (string, error) {
	if err := v.validator.Validate(ctx, reg); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRegistration, err)
	}

	return v.inner.Signup(ctx, reg)
}

func (v *ActivityValidationService) Unregister(ctx context.Context, reg models.Registration) (string, error) {
	if err := v.validator.Validate(ctx, reg); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRegistration, err)
	}

	return v.inner.Unregister(ctx, reg)
}
