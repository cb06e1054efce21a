// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the activity sign-up client.
//
// [ActivityClient] is a Bubble Tea model that renders the activity catalog
// as cards, offers a sign-up form and shows the outcome of every operation
// in a single status region that clears itself after a delay.
package tui

import (
	"context"

	"github.com/MKhiriev/go-activity-signup/internal/config"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/internal/service"
	"github.com/MKhiriev/go-activity-signup/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	cfg       config.ClientUI
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, cfg config.ClientUI, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.ActivityService == nil {
		return nil, ErrNoActivityService
	}

	return &TUI{
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// NewProgram builds the Bubble Tea program around a fresh ActivityClient.
// The program stops when ctx is cancelled.
func (t *TUI) NewProgram(ctx context.Context, opts ...tea.ProgramOption) *tea.Program {
	model := NewActivityClient(ctx, t.services.ActivityService, t.cfg, t.buildInfo, t.logger)

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	return tea.NewProgram(model, options...)
}
