// Copyright 2025 Christopher O'Connell
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uprockcom/modal/pkg/dialog"
	"github.com/uprockcom/modal/pkg/dom"
	"github.com/uprockcom/modal/pkg/tui/views"
)

func press(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func newTestDemo(t *testing.T) *Model {
	t.Helper()
	m := NewDemo(Options{Allocator: dialog.NewAllocator()})
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	return m
}

func activeID(m *Model) string {
	if el := m.Document().ActiveElement(); el != nil {
		return el.ID
	}
	return ""
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		key   string
		shift bool
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, dom.KeyTab, false},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, dom.KeyTab, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, dom.KeyEscape, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, dom.KeyEnter, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, dom.KeySpace, false},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, dom.KeyPageUp, false},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, dom.KeyPageDown, false},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, "up", false},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, "j", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, shift := translateKey(tt.msg)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.shift, shift)
		})
	}
}

func TestDemoStartsOnDialogTable(t *testing.T) {
	m := newTestDemo(t)

	assert.Equal(t, views.DialogTableID, activeID(m))
	assert.Empty(t, m.openDialogs())
	assert.False(t, m.Document().ScrollLocked())
}

func TestDemoConfirmTrapsFocusAndRestoresIt(t *testing.T) {
	m := newTestDemo(t)

	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	require.Equal(t, views.ConfirmButtonID, activeID(m))

	press(m, tea.KeyEnter)
	require.Len(t, m.openDialogs(), 1)
	assert.True(t, m.Document().ScrollLocked())
	assert.Equal(t, dialog.CancelButtonID, activeID(m))

	press(m, tea.KeyTab)
	assert.Equal(t, dialog.ConfirmButtonID, activeID(m))
	press(m, tea.KeyTab)
	assert.Equal(t, dialog.CancelButtonID, activeID(m))
	press(m, tea.KeyShiftTab)
	assert.Equal(t, dialog.ConfirmButtonID, activeID(m))

	press(m, tea.KeyEsc)
	require.Len(t, m.openDialogs(), 1, "confirm ignores escape")

	press(m, tea.KeyEnter)
	assert.Empty(t, m.openDialogs())
	assert.False(t, m.Document().ScrollLocked())
	assert.Equal(t, views.ConfirmButtonID, activeID(m))
}

func TestDemoAlertClosesOnEscape(t *testing.T) {
	m := newTestDemo(t)

	press(m, tea.KeyTab)
	require.Equal(t, views.AlertButtonID, activeID(m))
	press(m, tea.KeySpace)
	require.Len(t, m.openDialogs(), 1)
	assert.True(t, m.keys.Dismiss.Enabled())

	press(m, tea.KeyEsc)
	assert.Empty(t, m.openDialogs())
	assert.Equal(t, views.AlertButtonID, activeID(m))
	assert.False(t, m.keys.Dismiss.Enabled())
}

func TestDemoOpensNamedDialogFromTable(t *testing.T) {
	m := newTestDemo(t)

	press(m, tea.KeyEnter)

	overlays := m.openDialogs()
	require.Len(t, overlays, 1)
	// Sample dialogs are listed by name, so "release" is first
	assert.NotNil(t, overlays[0].FindByID("production"))
}

func TestPageScrollFrozenWhileDialogOpen(t *testing.T) {
	m := newTestDemo(t)

	press(m, tea.KeyPgDown)
	require.Greater(t, m.home.ScrollPercent(), 0.0)
	press(m, tea.KeyPgUp)
	require.Equal(t, 0.0, m.home.ScrollPercent())

	press(m, tea.KeyTab)
	press(m, tea.KeyEnter)
	require.True(t, m.Document().ScrollLocked())

	press(m, tea.KeyPgDown)
	assert.Equal(t, 0.0, m.home.ScrollPercent())
}

func TestOutcomeMessageIsRecorded(t *testing.T) {
	m := newTestDemo(t)

	press(m, tea.KeyTab)
	press(m, tea.KeyEnter)
	require.Len(t, m.openDialogs(), 1)

	out := m.Factory().Confirm("Another", "")
	m.track(sourceConfirm, out)
	wait := m.pending[len(m.pending)-1]
	m.pending = nil

	press(m, tea.KeyTab)
	press(m, tea.KeyEnter)

	msg, ok := wait().(outcomeMsg)
	require.True(t, ok)
	assert.Equal(t, out.ID(), msg.id)
	assert.Equal(t, true, msg.value)

	m.Update(msg)
	assert.Equal(t, "confirm → true", m.last)
	assert.False(t, m.Result().Resolved)
}

func TestSingleDialogQuitsWithResult(t *testing.T) {
	m := NewSingle(Options{Allocator: dialog.NewAllocator()}, func(f *dialog.Factory) *dialog.Outcome {
		return f.Confirm("Proceed?", "")
	})
	t.Cleanup(m.Close)
	require.Len(t, m.pending, 1)
	wait := m.pending[0]

	press(m, tea.KeyTab)
	press(m, tea.KeyEnter)

	msg, ok := wait().(outcomeMsg)
	require.True(t, ok)

	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, Result{Value: true, Resolved: true}, m.Result())
	assert.True(t, m.Result().Bool())
}

func TestAbandonedWaitIsIgnored(t *testing.T) {
	m := NewSingle(Options{Allocator: dialog.NewAllocator()}, func(f *dialog.Factory) *dialog.Outcome {
		return f.Alert("Heads up", "")
	})
	wait := m.pending[0]

	m.Close()
	msg, ok := wait().(outcomeMsg)
	require.True(t, ok)
	require.Error(t, msg.err)

	_, cmd := m.Update(msg)
	assert.Nil(t, cmd)
	assert.False(t, m.Result().Resolved)
	assert.Len(t, m.openDialogs(), 1)
}

func TestCtrlCInterrupts(t *testing.T) {
	m := newTestDemo(t)

	cmd := press(m, tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Result().Interrupted)
	assert.False(t, m.Result().Bool())
}

func TestViewDrawsOpenDialogOverPage(t *testing.T) {
	m := newTestDemo(t)

	page := ansi.Strip(m.View())
	assert.Contains(t, page, "Show confirm")
	assert.Contains(t, page, "release")

	press(m, tea.KeyTab)
	press(m, tea.KeyEnter)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Error")
	assert.Contains(t, view, "esc to close")
	assert.Contains(t, view, "dialogs 1")
	assert.Contains(t, view, "scroll locked")
}
