// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-activity-signup/internal/adapter"
	"github.com/MKhiriev/go-activity-signup/internal/app"
	"github.com/MKhiriev/go-activity-signup/internal/store"
	"github.com/MKhiriev/go-activity-signup/internal/validators"
)

// mapAdapterError adds the business sentinel matching the server detail to
// the adapter error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	var sentinel error
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		if apiErr.Detail == app.MsgActivityNotFound {
			sentinel = store.ErrActivityNotFound
		}

	case errors.Is(err, adapter.ErrBadRequest):
		switch apiErr.Detail {
		case app.MsgAlreadySignedUp:
			sentinel = store.ErrAlreadySignedUp
		case app.MsgActivityFull:
			sentinel = store.ErrActivityFull
		case app.MsgNotSignedUp:
			sentinel = store.ErrNotSignedUp
		}

	case errors.Is(err, adapter.ErrUnprocessable):
		if apiErr.Detail == app.MsgEmailRequired {
			sentinel = validators.ErrEmptyEmail
		}
	}

	if sentinel == nil {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
