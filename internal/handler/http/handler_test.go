// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/internal/mock"
	"github.com/MKhiriev/go-activity-signup/internal/service"
	"github.com/MKhiriev/go-activity-signup/internal/store"
	"github.com/MKhiriev/go-activity-signup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockedHandler(t *testing.T) (*Handler, *mock.MockActivityService, *mock.MockAppInfoService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	activities := mock.NewMockActivityService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{ActivityService: activities, AppInfoService: appInfo}, logger.Nop())
	return h, activities, appInfo
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
}

func TestListActivities_ServiceFailure_Returns500(t *testing.T) {
	h, activities, _ := newMockedHandler(t)
	activities.EXPECT().ListActivities(gomock.Any()).Return(models.Catalog{}, store.ErrExecutingQuery)

	rr := do(t, h.Init(), http.MethodGet, "/activities")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal server error", decodeDetail(t, rr))
}

func TestSignup_PassesDecodedNameAndEmail(t *testing.T) {
	h, activities, _ := newMockedHandler(t)
	activities.EXPECT().
		Signup(gomock.Any(), models.Registration{Activity: "Art & Design", Email: "x+y@mergington.edu"}).
		Return("ok", nil)

	rr := do(t, h.Init(), http.MethodPost, enrollmentPath("Art & Design", "signup", "x+y@mergington.edu"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeMessage(t, rr))
}

func TestUnregister_EscapedSlashInName(t *testing.T) {
	h, activities, _ := newMockedHandler(t)
	activities.EXPECT().
		Unregister(gomock.Any(), models.Registration{Activity: "A/B Club", Email: "a@mergington.edu"}).
		Return("ok", nil)

	rr := do(t, h.Init(), http.MethodDelete, "/activities/A%2FB%20Club/unregister?email=a%40mergington.edu")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetServerVersion(t *testing.T) {
	h, _, appInfo := newMockedHandler(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3-beta+build.42")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil).WithContext(context.Background())
	rr := httptest.NewRecorder()
	h.getServerVersion(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.2.3-beta+build.42", rr.Body.String())
}
