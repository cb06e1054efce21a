// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package observability

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	require.NoError(t, c.Write(metric))
	return metric.GetCounter().GetValue()
}

func TestRecordHTTPRequest_CountsByRoute(t *testing.T) {
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/activities", "200")
	before := counterValue(t, counter)

	RecordHTTPRequest(http.MethodGet, "/activities", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, before+1, counterValue(t, counter))
}

func TestRecordHTTPRequest_EmptyRouteIsUnmatched(t *testing.T) {
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := counterValue(t, counter)

	RecordHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, before+1, counterValue(t, counter))
}

func TestRecordEnrollment(t *testing.T) {
	counter := enrollmentsTotal.WithLabelValues("signup", OutcomeRejected)
	before := counterValue(t, counter)

	RecordEnrollment("signup", OutcomeRejected)
	RecordEnrollment("signup", OutcomeRejected)

	assert.Equal(t, before+2, counterValue(t, counter))
}
