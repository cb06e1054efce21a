// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-activity-signup/models"
)

// ReloadCatalogMsg asks the client to fetch the catalog again. Background
// workers send it through tea.Program.Send.
type ReloadCatalogMsg struct{}

type catalogLoadedMsg struct {
	catalog models.Catalog
	err     error
}

type enrollDoneMsg struct {
	message string
	err     error
}

type withdrawDoneMsg struct {
	message string
	err     error
}

// clearStatusMsg is delivered when a status message's display time is over.
// seq is the generation token captured when the message was shown.
type clearStatusMsg struct {
	seq uint64
}
