// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/activities", http.StatusTemporaryRedirect)
	})

	router.Get("/activities", h.listActivities)
	router.Post("/activities/{name}/signup", h.signup)
	router.Delete("/activities/{name}/unregister", h.unregister)

	router.Get("/api/version/", h.getServerVersion)
	router.Handle("/metrics", promhttp.Handler())

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeNotFound(w)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
