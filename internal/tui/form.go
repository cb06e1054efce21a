// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// signupForm is the email input plus the activity selector.
type signupForm struct {
	email    textinput.Model
	options  []string
	selected int
}

func newSignupForm() signupForm {
	email := textinput.New()
	email.Placeholder = "your-email@mergington.edu"
	email.Prompt = ""
	email.Width = 40
	email.CharLimit = 254

	return signupForm{email: email}
}

// setOptions replaces the selector entries with names. The current
// selection survives when its name is still offered, otherwise it falls
// back to the first entry.
func (f *signupForm) setOptions(names []string) {
	current := f.selectedActivity()

	f.options = append(f.options[:0:0], names...)
	f.selected = 0
	for i, name := range f.options {
		if name == current {
			f.selected = i
			break
		}
	}
}

func (f signupForm) selectedActivity() string {
	if f.selected < 0 || f.selected >= len(f.options) {
		return ""
	}
	return f.options[f.selected]
}

// cycle moves the selection by delta, wrapping at both ends.
func (f *signupForm) cycle(delta int) {
	n := len(f.options)
	if n == 0 {
		return
	}
	f.selected = ((f.selected+delta)%n + n) % n
}

// reset clears the email and moves the selection back to the first entry.
func (f *signupForm) reset() {
	f.email.Reset()
	f.selected = 0
}

func (f *signupForm) focus() tea.Cmd {
	return f.email.Focus()
}

func (f *signupForm) blur() {
	f.email.Blur()
}

func (f signupForm) update(msg tea.Msg) (signupForm, tea.Cmd) {
	var cmd tea.Cmd
	f.email, cmd = f.email.Update(msg)
	return f, cmd
}

func (f signupForm) View(focused bool) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Email: "))
	b.WriteString(f.email.View())
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Activity: "))
	if len(f.options) == 0 {
		b.WriteString(placeholderStyle.Render("-- Select an activity --"))
	} else {
		selector := "< " + f.selectedActivity() + " >"
		if focused {
			selector = cursorRowStyle.Render(selector)
		}
		b.WriteString(selector)
	}

	return b.String()
}
