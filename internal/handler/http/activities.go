// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-activity-signup/internal/app"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/internal/observability"
	"github.com/MKhiriev/go-activity-signup/internal/utils"
	"github.com/MKhiriev/go-activity-signup/models"
	"github.com/go-chi/chi/v5"
)

const (
	operationSignup     = "signup"
	operationUnregister = "unregister"
)

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	catalog, err := h.services.ActivityService.ListActivities(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listActivities").Msg("error listing activities")
		utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	if _, err = utils.WriteJSON(w, catalog, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listActivities").Msg("error writing response")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	reg := registrationFromRequest(r)

	msg, err := h.services.ActivityService.Signup(r.Context(), reg)
	h.writeEnrollmentResult(w, r, operationSignup, msg, err)
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	reg := registrationFromRequest(r)

	msg, err := h.services.ActivityService.Unregister(r.Context(), reg)
	h.writeEnrollmentResult(w, r, operationUnregister, msg, err)
}

func (h *Handler) writeEnrollmentResult(w http.ResponseWriter, r *http.Request, operation, msg string, err error) {
	log := logger.FromRequest(r)

	if err != nil {
		status, detail := responseFromError(err)
		if status == http.StatusInternalServerError {
			observability.RecordEnrollment(operation, observability.OutcomeFailed)
			log.Err(err).Str("operation", operation).Msg("enrollment operation failed")
		} else {
			observability.RecordEnrollment(operation, observability.OutcomeRejected)
			log.Info().Err(err).Str("operation", operation).Msg("enrollment operation rejected")
		}
		utils.WriteDetail(w, detail, status)
		return
	}

	observability.RecordEnrollment(operation, observability.OutcomeOK)
	utils.WriteJSON(w, models.MessageResponse{Message: msg}, http.StatusOK)
}

// registrationFromRequest reads the activity from the {name} path segment
// and the participant from the email query parameter.
func registrationFromRequest(r *http.Request) models.Registration {
	name := chi.URLParam(r, "name")
	// chi routes on RawPath when it is set, leaving the segment escaped.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}

	return models.Registration{
		Activity: name,
		Email:    r.URL.Query().Get("email"),
	}
}
