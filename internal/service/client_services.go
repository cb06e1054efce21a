// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-activity-signup/internal/adapter"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
)

type ClientServices struct {
	ActivityService ClientActivityService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ActivityService: NewClientActivityService(serverAdapter, logger),
	}
}
