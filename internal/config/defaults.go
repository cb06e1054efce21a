// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultServerAddress        = "localhost:8000"
	defaultServerRequestTimeout = 30 * time.Second
	defaultAdapterAddress       = "http://localhost:8000"
	defaultAdapterTimeout       = 10 * time.Second
	defaultSuccessDelay         = 3 * time.Second
	defaultErrorDelay           = 5 * time.Second
	defaultVersion              = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: defaultVersion,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		UI: UI{
			SuccessDelay: defaultSuccessDelay,
			ErrorDelay:   defaultErrorDelay,
		},
	}
}
