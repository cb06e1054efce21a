// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "http 400: Activity is full", NewAPIError(http.StatusBadRequest, "Activity is full").Error())
	assert.Equal(t, "http 404: Not Found", NewAPIError(http.StatusNotFound, "").Error())
}

func TestAPIError_Unwrap(t *testing.T) {
	err := error(NewAPIError(http.StatusNotFound, "Activity not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrBadRequest))
}

func TestExtractDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string", body: `{"detail": "Activity is full"}`, want: "Activity is full"},
		{name: "list", body: `{"detail": [{"msg": "field required"}]}`, want: ""},
		{name: "number", body: `{"detail": 42}`, want: ""},
		{name: "missing", body: `{"message": "x"}`, want: ""},
		{name: "not json", body: `oops`, want: ""},
		{name: "empty", body: ``, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDetail([]byte(tt.body)))
		})
	}
}
