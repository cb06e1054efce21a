// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-activity-signup/internal/utils"
)

// writeNotFound answers unknown routes with the same {"detail"} body the
// handlers use.
func writeNotFound(w http.ResponseWriter) {
	utils.WriteDetail(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
