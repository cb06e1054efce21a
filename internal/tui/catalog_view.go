// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-activity-signup/internal/app"
	"github.com/MKhiriev/go-activity-signup/models"
)

const removeAffordance = "[x]"

// participantRow is one focusable participant line. Withdraw acts on the
// row under the cursor.
type participantRow struct {
	activity string
	email    string
}

// participantRows lists every participant in catalog order, then
// enrollment order.
func participantRows(catalog models.Catalog) []participantRow {
	var rows []participantRow
	for _, name := range catalog.Names {
		activity, _ := catalog.Get(name)
		for _, email := range activity.Participants {
			rows = append(rows, participantRow{activity: name, email: email})
		}
	}
	return rows
}

// renderCatalog renders one card per activity in catalog order. cursor is
// the highlighted row, or nil when the list is not focused.
func renderCatalog(catalog models.Catalog, cursor *participantRow) string {
	cards := make([]string, 0, catalog.Len())
	for _, name := range catalog.Names {
		activity, _ := catalog.Get(name)
		cards = append(cards, renderActivityCard(name, activity, cursor))
	}
	return strings.Join(cards, "\n")
}

func renderActivityCard(name string, activity models.Activity, cursor *participantRow) string {
	var b strings.Builder

	b.WriteString(cardTitleStyle.Render(name))
	b.WriteString("\n")
	b.WriteString(activity.Description)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Schedule:"))
	b.WriteString(" " + activity.Schedule + "\n")
	b.WriteString(labelStyle.Render("Availability:"))
	b.WriteString(fmt.Sprintf(" %d spots left\n", activity.SpotsLeft()))
	b.WriteString(labelStyle.Render("Current Participants:"))
	b.WriteString("\n")

	if len(activity.Participants) == 0 {
		b.WriteString(placeholderStyle.Render(app.UINoParticipants))
		return cardStyle.Render(b.String())
	}

	for i, email := range activity.Participants {
		row := "  " + email + " " + removeAffordance
		if cursor != nil && cursor.activity == name && cursor.email == email {
			row = cursorRowStyle.Render("> " + email + " " + removeAffordance)
		}
		b.WriteString(row)
		if i < len(activity.Participants)-1 {
			b.WriteString("\n")
		}
	}

	return cardStyle.Render(b.String())
}
