// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-activity-signup/internal/app"
	"github.com/MKhiriev/go-activity-signup/internal/store"
	"github.com/MKhiriev/go-activity-signup/internal/validators"
)

type errorResponse struct {
	status int
	detail string
}

var errorResponseMap = map[error]errorResponse{
	store.ErrActivityNotFound: {http.StatusNotFound, app.MsgActivityNotFound},
	store.ErrAlreadySignedUp:  {http.StatusBadRequest, app.MsgAlreadySignedUp},
	store.ErrActivityFull:     {http.StatusBadRequest, app.MsgActivityFull},
	store.ErrNotSignedUp:      {http.StatusBadRequest, app.MsgNotSignedUp},

	validators.ErrEmptyEmail:    {http.StatusUnprocessableEntity, app.MsgEmailRequired},
	validators.ErrEmptyActivity: {http.StatusNotFound, app.MsgActivityNotFound},
}

// responseFromError returns the status code and detail text for err.
// Anything not listed is a 500 with a generic detail.
func responseFromError(err error) (int, string) {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp.status, resp.detail
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
