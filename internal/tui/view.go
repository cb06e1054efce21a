// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-activity-signup/internal/app"
)

const (
	pageTitle    = "Mergington High School · Extracurricular Activities"
	listHotKeys  = "tab: sign-up form │ ↑/↓: participant │ d: remove │ c: copy email │ r: reload │ v: about │ q: quit"
	formHotKeys  = "tab/esc: activities │ ←/→: activity │ enter: sign up"
	loadingLabel = "Loading activities..."
)

func (m ActivityClient) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder

	if status := renderStatus(m.status); status != "" {
		b.WriteString(status)
		b.WriteString("\n\n")
	}

	b.WriteString(renderSection("Available Activities", m.listingView()))
	b.WriteString("\n\n")
	b.WriteString(renderSection("Sign Up for an Activity", m.form.View(m.focus == focusForm)))

	hotKeys := listHotKeys
	if m.focus == focusForm {
		hotKeys = formHotKeys
	}

	return renderPage(pageTitle, b.String(), hotKeys)
}

// listingView is the area the catalog cards live in. A failed load replaces
// it with the error text until the next successful load.
func (m ActivityClient) listingView() string {
	if m.loadFailed {
		return errorStyle.Render(app.UILoadFailed)
	}

	if m.catalog.Len() == 0 {
		if m.loading {
			return m.spinner.View() + " " + loadingLabel
		}
		return placeholderStyle.Render("No activities")
	}

	var cursor *participantRow
	if m.focus == focusList {
		if row, ok := m.currentRow(); ok {
			cursor = &row
		}
	}

	out := renderCatalog(m.catalog, cursor)
	if m.loading {
		out = m.spinner.View() + " " + loadingLabel + "\n" + out
	}
	return out
}
