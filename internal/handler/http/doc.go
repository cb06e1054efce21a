// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP API of the activity server.
//
// It wires the chi routes for listing activities, signing up and
// unregistering, plus the version and Prometheus endpoints. Request tracing,
// access logging and request metrics are middleware applied before the
// handlers delegate to the service layer. Errors leave the package as
// {"detail": "..."} bodies.
package http
