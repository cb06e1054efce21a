// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cardTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle       = lipgloss.NewStyle().Bold(true)
	placeholderStyle = lipgloss.NewStyle().Italic(true).Faint(true)
	cursorRowStyle   = lipgloss.NewStyle().Reverse(true)
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
