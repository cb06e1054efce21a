// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the success body of the signup and unregister
// endpoints.
type MessageResponse struct {
	// Message is a human-readable confirmation such as
	// "Signed up alice@mergington.edu for Chess Club".
	Message string `json:"message"`
}

// ErrorResponse is the failure body returned by the server for
// application-level errors (e.g. "Activity is full").
type ErrorResponse struct {
	Detail string `json:"detail"`
}
