// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTransport           = errors.New("transport failure")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrDecodeResponse      = errors.New("cannot decode response")
)

// APIError is a non-2xx answer of the activity server.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Detail is the server supplied "detail" text. Empty when the body had
	// none or it was not a string.
	Detail string

	sentinel error
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Detail)
}

// Unwrap exposes the status sentinel so errors.Is(err, ErrNotFound) works.
func (e *APIError) Unwrap() error {
	return e.sentinel
}

// HasDetail reports whether the server explained the failure.
func (e *APIError) HasDetail() bool {
	return e.Detail != ""
}

// NewAPIError builds an APIError for statusCode, picking the matching
// sentinel.
func NewAPIError(statusCode int, detail string) *APIError {
	return &APIError{StatusCode: statusCode, Detail: detail, sentinel: sentinelFor(statusCode)}
}

func sentinelFor(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}
