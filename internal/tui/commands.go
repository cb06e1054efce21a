// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// loadCatalog fetches the whole catalog. The result replaces the local one
// in Update, whichever load finishes last wins.
func (m ActivityClient) loadCatalog() tea.Cmd {
	ctx := m.ctx
	svc := m.service

	return func() tea.Msg {
		catalog, err := svc.Catalog(ctx)
		return catalogLoadedMsg{catalog: catalog, err: err}
	}
}

func (m ActivityClient) enroll(activity, email string) tea.Cmd {
	ctx := m.ctx
	svc := m.service

	return func() tea.Msg {
		message, err := svc.Enroll(ctx, activity, email)
		return enrollDoneMsg{message: message, err: err}
	}
}

func (m ActivityClient) withdraw(activity, email string) tea.Cmd {
	ctx := m.ctx
	svc := m.service

	return func() tea.Msg {
		message, err := svc.Withdraw(ctx, activity, email)
		return withdrawDoneMsg{message: message, err: err}
	}
}
