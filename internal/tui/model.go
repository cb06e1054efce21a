// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-activity-signup/internal/app"
	"github.com/MKhiriev/go-activity-signup/internal/config"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/internal/service"
	"github.com/MKhiriev/go-activity-signup/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusList focusArea = iota
	focusForm
)

// ActivityClient is the only owner of the catalog, the sign-up form and the
// status region. Network calls run as commands and come back as messages,
// so all state changes happen in Update.
//
// The catalog is never edited locally: enroll and withdraw go to the server
// and a successful one is followed by a full reload.
type ActivityClient struct {
	ctx     context.Context
	service service.ClientActivityService
	logger  *logger.Logger

	successDelay time.Duration
	errorDelay   time.Duration

	catalog    models.Catalog
	loading    bool
	loadFailed bool
	spinner    spinner.Model
	spinning   bool

	rows   []participantRow
	cursor int

	form  signupForm
	focus focusArea

	status models.StatusMessage

	copyToClipboard func(string) error

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

func NewActivityClient(
	ctx context.Context,
	svc service.ClientActivityService,
	cfg config.ClientUI,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) ActivityClient {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return ActivityClient{
		ctx:             ctx,
		service:         svc,
		logger:          logger,
		successDelay:    cfg.SuccessDelay,
		errorDelay:      cfg.ErrorDelay,
		catalog:         models.NewCatalog(),
		loading:         true,
		spinner:         s,
		form:            newSignupForm(),
		copyToClipboard: clipboard.WriteAll,
		buildInfo:       buildInfo,
	}
}

func (m ActivityClient) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog(), m.spinner.Tick)
}

func (m ActivityClient) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.applyCatalog(msg)
		return m, nil

	case enrollDoneMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("enroll failed")
			return m, m.showStatus(failureText(msg.err, app.UISignupGenericError, app.UISignupTransportError), models.StatusError)
		}
		statusCmd := m.showStatus(msg.message, models.StatusSuccess)
		m.form.reset()
		return m, tea.Batch(statusCmd, m.startReload())

	case withdrawDoneMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("withdraw failed")
			return m, m.showStatus(failureText(msg.err, app.UIWithdrawGenericError, app.UIWithdrawTransportError), models.StatusError)
		}
		statusCmd := m.showStatus(msg.message, models.StatusSuccess)
		return m, tea.Batch(statusCmd, m.startReload())

	case clearStatusMsg:
		m.clearStatus(msg)
		return m, nil

	case ReloadCatalogMsg:
		return m, m.startReload()

	case spinner.TickMsg:
		if !m.loading {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.spinning = cmd != nil
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

// startReload issues a catalog load. Loads are never cancelled or merged.
func (m *ActivityClient) startReload() tea.Cmd {
	m.loading = true
	if m.spinning {
		return m.loadCatalog()
	}
	m.spinning = true
	return tea.Batch(m.loadCatalog(), m.spinner.Tick)
}

func (m *ActivityClient) applyCatalog(msg catalogLoadedMsg) {
	m.loading = false

	if msg.err != nil {
		m.logger.Err(msg.err).Msg("error loading activities")
		m.loadFailed = true
		m.rows = nil
		m.cursor = 0
		return
	}

	previous, hadPrevious := m.currentRow()

	m.loadFailed = false
	m.catalog = msg.catalog
	m.form.setOptions(msg.catalog.Names)
	m.rows = participantRows(msg.catalog)

	m.cursor = 0
	if hadPrevious {
		for i, row := range m.rows {
			if row == previous {
				m.cursor = i
				break
			}
		}
	}
}

func (m ActivityClient) currentRow() (participantRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return participantRow{}, false
	}
	return m.rows[m.cursor], true
}

func (m ActivityClient) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.tab) {
		return m.toggleFocus()
	}

	if m.focus == focusForm {
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

func (m ActivityClient) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusList {
		m.focus = focusForm
		return m, m.form.focus()
	}
	m.focus = focusList
	m.form.blur()
	return m, nil
}

func (m ActivityClient) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m.toggleFocus()
	case key.Matches(msg, keys.left):
		m.form.cycle(-1)
		return m, nil
	case key.Matches(msg, keys.right):
		m.form.cycle(1)
		return m, nil
	case key.Matches(msg, keys.enter):
		return m, m.enroll(m.form.selectedActivity(), m.form.email.Value())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m ActivityClient) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.withdraw):
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		return m, m.withdraw(row.activity, row.email)
	case key.Matches(msg, keys.copy):
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if err := m.copyToClipboard(row.email); err != nil {
			m.logger.Err(err).Msg("clipboard write failed")
			return m, m.showStatus("Failed to copy email", models.StatusError)
		}
		return m, m.showStatus("Copied "+row.email, models.StatusSuccess)
	case key.Matches(msg, keys.reload):
		return m, m.startReload()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

// Catalog returns the last successfully loaded catalog.
func (m ActivityClient) Catalog() models.Catalog {
	return m.catalog
}

// Status returns the content of the status region.
func (m ActivityClient) Status() models.StatusMessage {
	return m.status
}

// SelectorOptions returns the activity selector entries in catalog order.
func (m ActivityClient) SelectorOptions() []string {
	return m.form.options
}
