// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-activity-signup/internal/adapter"
	"github.com/MKhiriev/go-activity-signup/internal/app"
	"github.com/MKhiriev/go-activity-signup/internal/config"
	"github.com/MKhiriev/go-activity-signup/internal/logger"
	"github.com/MKhiriev/go-activity-signup/internal/mock"
	"github.com/MKhiriev/go-activity-signup/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newTestClient(t *testing.T) (ActivityClient, *mock.MockClientActivityService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientActivityService(ctrl)

	cfg := config.ClientUI{SuccessDelay: 10 * time.Millisecond, ErrorDelay: 20 * time.Millisecond}
	m := NewActivityClient(context.Background(), svc, cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	m.copyToClipboard = func(string) error { return nil }

	return m, svc
}

func update(t *testing.T, m ActivityClient, msg tea.Msg) (ActivityClient, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	client, ok := next.(ActivityClient)
	require.True(t, ok)
	return client, cmd
}

// runCmd executes cmd and returns the produced messages with batches
// flattened.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testCatalog() models.Catalog {
	c := models.NewCatalog()
	c.Add("Chess Club", models.Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"a@b.com", "daniel@mergington.edu"},
	})
	c.Add("Programming Class", models.Activity{
		Description:     "Learn programming fundamentals",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu"},
	})
	c.Add("Art Club", models.Activity{
		Description:     "Explore your creativity",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
	})
	return c
}

func loaded(t *testing.T, catalog models.Catalog) (ActivityClient, *mock.MockClientActivityService) {
	t.Helper()
	m, svc := newTestClient(t)
	m, _ = update(t, m, catalogLoadedMsg{catalog: catalog})
	return m, svc
}

// ---- loadCatalog ----

func TestInit_LoadsCatalog(t *testing.T) {
	m, svc := newTestClient(t)
	svc.EXPECT().Catalog(gomock.Any()).Return(testCatalog(), nil)

	msgs := runCmd(m.Init())

	got, ok := findMsg[catalogLoadedMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, testCatalog().Names, got.catalog.Names)
}

func TestLoadCatalog_OneCardAndOneSelectorEntryPerActivity(t *testing.T) {
	catalog := testCatalog()
	m, _ := loaded(t, catalog)

	view := m.View()
	assert.Equal(t, catalog.Len(), strings.Count(view, "Availability:"))
	assert.Equal(t, catalog.Names, m.SelectorOptions())

	// Cards follow catalog order.
	chess := strings.Index(view, "Chess Club")
	programming := strings.Index(view, "Programming Class")
	art := strings.Index(view, "Art Club")
	assert.True(t, chess < programming && programming < art)
}

func TestLoadCatalog_SelectorIsRebuiltNotAppended(t *testing.T) {
	m, _ := loaded(t, testCatalog())

	smaller := models.NewCatalog()
	smaller.Add("Chess Club", models.Activity{MaxParticipants: 12})
	m, _ = update(t, m, catalogLoadedMsg{catalog: smaller})

	assert.Equal(t, []string{"Chess Club"}, m.SelectorOptions())
}

func TestLoadCatalog_Failure_ShowsErrorInPlaceOfListing(t *testing.T) {
	m, _ := loaded(t, testCatalog())

	m, cmd := update(t, m, catalogLoadedMsg{err: errors.New("connection refused")})
	assert.Nil(t, cmd, "a failed load is not retried")

	view := m.View()
	assert.Contains(t, view, app.UILoadFailed)
	assert.NotContains(t, view, "Availability:")
	assert.Equal(t, testCatalog().Names, m.SelectorOptions(), "selector keeps its previous entries")
}

func TestLoadCatalog_TwiceWithSameStateRendersIdentically(t *testing.T) {
	m, _ := loaded(t, testCatalog())
	first := m.View()

	m, _ = update(t, m, catalogLoadedMsg{catalog: testCatalog()})
	second := m.View()

	assert.Equal(t, first, second)
}

func TestReloadCatalogMsg_IssuesLoad(t *testing.T) {
	m, svc := loaded(t, testCatalog())
	svc.EXPECT().Catalog(gomock.Any()).Return(testCatalog(), nil)

	m, cmd := update(t, m, ReloadCatalogMsg{})

	assert.True(t, m.loading)
	_, ok := findMsg[catalogLoadedMsg](runCmd(cmd))
	assert.True(t, ok)
}

// ---- enroll ----

func submitForm(t *testing.T, m ActivityClient, activityIdx int, email string) (ActivityClient, tea.Cmd) {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusForm, m.focus)

	m.form.email.SetValue(email)
	for i := 0; i < activityIdx; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestEnroll_Success_ShowsMessageResetsFormAndReloads(t *testing.T) {
	m, svc := loaded(t, testCatalog())

	gomock.InOrder(
		svc.EXPECT().Enroll(gomock.Any(), "Programming Class", "new@mergington.edu").Return("Signed up", nil),
		svc.EXPECT().Catalog(gomock.Any()).Return(testCatalog(), nil),
	)

	m, cmd := submitForm(t, m, 1, "new@mergington.edu")
	done, ok := findMsg[enrollDoneMsg](runCmd(cmd))
	require.True(t, ok)

	m, cmd = update(t, m, done)

	status := m.Status()
	assert.True(t, status.Visible)
	assert.Equal(t, "Signed up", status.Text)
	assert.Equal(t, models.StatusSuccess, status.Kind)
	assert.Empty(t, m.form.email.Value())
	assert.Equal(t, 0, m.form.selected)
	assert.Contains(t, m.View(), "Signed up")

	_, reloaded := findMsg[catalogLoadedMsg](runCmd(cmd))
	assert.True(t, reloaded, "a successful enroll reloads the catalog")
}

func TestEnroll_Failure_ShowsErrorWithoutReload(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantText string
	}{
		{
			name:     "server detail",
			err:      fmt.Errorf("sign up: %w", adapter.NewAPIError(http.StatusBadRequest, "Activity full")),
			wantText: "Activity full",
		},
		{
			name:     "no detail",
			err:      adapter.NewAPIError(http.StatusInternalServerError, ""),
			wantText: app.UISignupGenericError,
		},
		{
			name:     "transport",
			err:      fmt.Errorf("sign up: %w: %w", adapter.ErrTransport, errors.New("connection refused")),
			wantText: app.UISignupTransportError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := loaded(t, testCatalog())
			// No Catalog expectation: gomock fails the test on a reload.
			svc.EXPECT().Enroll(gomock.Any(), "Chess Club", "a@b.com").Return("", tt.err)

			m, cmd := submitForm(t, m, 0, "a@b.com")
			done, ok := findMsg[enrollDoneMsg](runCmd(cmd))
			require.True(t, ok)

			m, cmd = update(t, m, done)

			status := m.Status()
			assert.Equal(t, tt.wantText, status.Text)
			assert.Equal(t, models.StatusError, status.Kind)
			assert.Equal(t, "a@b.com", m.form.email.Value(), "form keeps its input on failure")

			msgs := runCmd(cmd)
			_, reloaded := findMsg[catalogLoadedMsg](msgs)
			assert.False(t, reloaded)
		})
	}
}

// ---- withdraw ----

func TestWithdraw_Success_ParticipantDisappearsAfterReload(t *testing.T) {
	m, svc := loaded(t, testCatalog())
	require.Contains(t, m.View(), "a@b.com")

	after := testCatalog()
	chess, _ := after.Get("Chess Club")
	chess.Participants = []string{"daniel@mergington.edu"}
	after.Add("Chess Club", chess)

	gomock.InOrder(
		svc.EXPECT().Withdraw(gomock.Any(), "Chess Club", "a@b.com").
			Return("Unregistered a@b.com from Chess Club", nil),
		svc.EXPECT().Catalog(gomock.Any()).Return(after, nil),
	)

	// The cursor starts on the first participant row.
	m, cmd := update(t, m, keyRunes("d"))
	done, ok := findMsg[withdrawDoneMsg](runCmd(cmd))
	require.True(t, ok)

	m, cmd = update(t, m, done)
	assert.Equal(t, "Unregistered a@b.com from Chess Club", m.Status().Text)
	assert.Equal(t, models.StatusSuccess, m.Status().Kind)

	reload, ok := findMsg[catalogLoadedMsg](runCmd(cmd))
	require.True(t, ok)
	m, _ = update(t, m, reload)

	// The status line still names the email, so check the listing only.
	assert.NotContains(t, renderCatalog(m.Catalog(), nil), "a@b.com")
	assert.NotContains(t, participantRows(m.Catalog()), participantRow{activity: "Chess Club", email: "a@b.com"})
}

func TestWithdraw_Failure_ShowsErrorWithoutReload(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantText string
	}{
		{
			name:     "server detail",
			err:      adapter.NewAPIError(http.StatusBadRequest, app.MsgNotSignedUp),
			wantText: app.MsgNotSignedUp,
		},
		{
			name:     "no detail",
			err:      adapter.NewAPIError(http.StatusBadRequest, ""),
			wantText: app.UIWithdrawGenericError,
		},
		{
			name:     "transport",
			err:      adapter.ErrTransport,
			wantText: app.UIWithdrawTransportError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := loaded(t, testCatalog())
			svc.EXPECT().Withdraw(gomock.Any(), "Chess Club", "a@b.com").Return("", tt.err)

			m, cmd := update(t, m, keyRunes("d"))
			done, ok := findMsg[withdrawDoneMsg](runCmd(cmd))
			require.True(t, ok)

			m, cmd = update(t, m, done)
			assert.Equal(t, tt.wantText, m.Status().Text)
			assert.Equal(t, models.StatusError, m.Status().Kind)

			_, reloaded := findMsg[catalogLoadedMsg](runCmd(cmd))
			assert.False(t, reloaded)
		})
	}
}

func TestWithdraw_CursorSelectsRow(t *testing.T) {
	m, svc := loaded(t, testCatalog())
	svc.EXPECT().Withdraw(gomock.Any(), "Programming Class", "emma@mergington.edu").Return("ok", nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown}) // clamped at the last row

	_, cmd := update(t, m, keyRunes("d"))
	_, ok := findMsg[withdrawDoneMsg](runCmd(cmd))
	assert.True(t, ok)
}

func TestWithdraw_NoRows_NoRequest(t *testing.T) {
	m, _ := loaded(t, models.NewCatalog())

	_, cmd := update(t, m, keyRunes("d"))
	assert.Nil(t, cmd)
}

// ---- status region ----

func TestStatus_SuccessAutoClears(t *testing.T) {
	m, _ := newTestClient(t)

	cmd := m.showStatus("Signed up", models.StatusSuccess)
	require.True(t, m.Status().Visible)

	start := time.Now()
	clear, ok := findMsg[clearStatusMsg](runCmd(cmd))
	require.True(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), m.successDelay)

	m, _ = update(t, m, clear)
	assert.False(t, m.Status().Visible)
	assert.NotContains(t, m.View(), "Signed up")
}

func TestStatus_ErrorUsesLongerDelay(t *testing.T) {
	m, _ := newTestClient(t)

	start := time.Now()
	runCmd(m.showStatus("Activity full", models.StatusError))

	assert.GreaterOrEqual(t, time.Since(start), m.errorDelay)
}

func TestStatus_StaleClearDoesNotHideNewerMessage(t *testing.T) {
	m, _ := newTestClient(t)

	first := m.showStatus("first", models.StatusSuccess)
	second := m.showStatus("second", models.StatusError)

	staleClear, ok := findMsg[clearStatusMsg](runCmd(first))
	require.True(t, ok)
	m, _ = update(t, m, staleClear)

	assert.True(t, m.Status().Visible)
	assert.Equal(t, "second", m.Status().Text)

	currentClear, ok := findMsg[clearStatusMsg](runCmd(second))
	require.True(t, ok)
	m, _ = update(t, m, currentClear)

	assert.False(t, m.Status().Visible)
}

func TestStatus_SeqIncreasesPerMessage(t *testing.T) {
	m, _ := newTestClient(t)

	m.showStatus("a", models.StatusSuccess)
	first := m.Status().Seq
	m.showStatus("b", models.StatusSuccess)

	assert.Greater(t, m.Status().Seq, first)
}

// ---- keys ----

func TestKeys_TabTogglesFocus(t *testing.T) {
	m, _ := loaded(t, testCatalog())
	require.Equal(t, focusList, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusForm, m.focus)
	assert.True(t, m.form.email.Focused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusList, m.focus)
	assert.False(t, m.form.email.Focused())
}

func TestKeys_QuitFromList(t *testing.T) {
	m, _ := loaded(t, testCatalog())

	_, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestKeys_QInFormIsTyped(t *testing.T) {
	m, _ := loaded(t, testCatalog())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = update(t, m, keyRunes("q"))

	assert.Equal(t, "q", m.form.email.Value())
}

func TestKeys_CopyFocusedEmail(t *testing.T) {
	m, _ := loaded(t, testCatalog())

	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m, _ = update(t, m, keyRunes("c"))

	assert.Equal(t, "a@b.com", copied)
	assert.Equal(t, models.StatusSuccess, m.Status().Kind)
}

func TestKeys_CopyFailureShowsError(t *testing.T) {
	m, _ := loaded(t, testCatalog())
	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }

	m, _ = update(t, m, keyRunes("c"))

	assert.Equal(t, models.StatusError, m.Status().Kind)
}

func TestKeys_BuildInfoOverlay(t *testing.T) {
	m, _ := loaded(t, testCatalog())

	m, _ = update(t, m, keyRunes("v"))
	assert.Contains(t, m.View(), "Version: 1.0.0")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "Chess Club")
}
