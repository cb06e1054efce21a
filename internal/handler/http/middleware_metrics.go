// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-activity-signup/internal/observability"
	"github.com/go-chi/chi/v5"
)

// withMetrics records every request under its chi route pattern. The
// pattern is only known once routing is done, so it is read after next.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := newResponseWriter(w)
		next.ServeHTTP(mw, r)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		observability.RecordHTTPRequest(r.Method, route, mw.status, time.Since(start))
	})
}
