// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-activity-signup/models"
	tea "github.com/charmbracelet/bubbletea"
)

// showStatus replaces the status region content and schedules its own
// clear. Older pending clears carry a smaller seq and are ignored.
func (m *ActivityClient) showStatus(text string, kind models.StatusKind) tea.Cmd {
	delay := m.successDelay
	if kind == models.StatusError {
		delay = m.errorDelay
	}

	seq := m.status.Seq + 1
	m.status = models.StatusMessage{
		Text:    text,
		Kind:    kind,
		Visible: true,
		Seq:     seq,
	}

	return tea.Tick(delay, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// clearStatus hides the region only if msg belongs to the message on
// screen. Text and kind stay until the next message.
func (m *ActivityClient) clearStatus(msg clearStatusMsg) {
	if msg.seq != m.status.Seq {
		return
	}
	m.status.Visible = false
}

func renderStatus(status models.StatusMessage) string {
	if !status.Visible || status.Text == "" {
		return ""
	}
	if status.Kind == models.StatusError {
		return errorStyle.Render(status.Text)
	}
	return successStyle.Render(status.Text)
}
