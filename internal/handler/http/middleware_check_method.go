// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. Instead of chi's
// 405 it answers 404 {"detail":"Not Found"} when the matched route has no
// handler for the request method, and otherwise hands the request back to
// the router.
//
// Routes are compared by exact pattern, so parameterised routes such as
// /activities/{name}/signup always take the 404 branch.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeNotFound(w)
			return
		}

		router.ServeHTTP(w, r)
	}
}
