// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-activity-signup/internal/config"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/internal/tui"
	"github.com/MKhiriev/go-activity-signup/internal/workers"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoUI = errors.New("terminal ui is not set")

type App struct {
	ui  *tui.TUI
	cfg config.ClientWorkers

	programOptions []tea.ProgramOption

	logger *logger.Logger
}

func NewApp(ui *tui.TUI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		ui:     ui,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Run shows the UI and keeps the background refresher alive until the user
// quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	program := a.ui.NewProgram(ctx, a.programOptions...)

	refresher := workers.NewCatalogRefresher(a.cfg.RefreshInterval, func() {
		program.Send(tui.ReloadCatalogMsg{})
	}, a.logger)

	bg := workers.NewWorkers(refresher)
	bg.Run()
	defer bg.Stop()

	a.logger.Info().Msg("client started")

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			a.logger.Info().Msg("client stopped by context")
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	a.logger.Info().Msg("client exited")
	return nil
}
