// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-activity-signup/models"
)

const (
	FieldActivity = "activity"
	FieldEmail    = "email"
)

type RegistrationValidator struct {
}

func NewRegistrationValidator() Validator {
	return &RegistrationValidator{}
}

func (v *RegistrationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegistration(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RegistrationValidator) validateRegistration(ctx context.Context, reg models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldActivity, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldActivity:
			if strings.TrimSpace(reg.Activity) == "" {
				return ErrEmptyActivity
			}
		case FieldEmail:
			if strings.TrimSpace(reg.Email) == "" {
				return ErrEmptyEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
