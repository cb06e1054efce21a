// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-activity-signup/internal/adapter"
)

var ErrNoActivityService = errors.New("activity service is not set")

// failureText picks the status text for a failed enroll or withdraw.
// A server answer shows its detail or generic when it had none. Anything
// else means no usable answer arrived, which is reported as transport.
func failureText(err error, generic, transport string) string {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HasDetail() {
			return apiErr.Detail
		}
		return generic
	}
	return transport
}
