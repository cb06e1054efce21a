// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-activity-signup/internal/adapter"
	"github.com/MKhiriev/go-activity-signup/internal/client"
	"github.com/MKhiriev/go-activity-signup/internal/config"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/internal/service"
	"github.com/MKhiriev/go-activity-signup/internal/tui"
	"github.com/MKhiriev/go-activity-signup/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("activity-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("activity-client", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	ui, err := tui.New(services, cfg.UI, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
