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
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mistakenelf/teacup/statusbar"
	"github.com/rs/zerolog"
	"go.dalton.dog/bubbleup"

	"github.com/uprockcom/modal/pkg/dialog"
	"github.com/uprockcom/modal/pkg/dom"
	"github.com/uprockcom/modal/pkg/tui/style"
	"github.com/uprockcom/modal/pkg/tui/views"
)

const (
	alertWidth    = 50
	alertDuration = 3 * time.Second
)

// Sources reported for the page's preset buttons
const (
	sourceAlert   = "alert"
	sourceConfirm = "confirm"
	sourceDialog  = "dialog"
)

const loremMessage = "Lorem, ipsum dolor sit amet consectetur adipisicing elit."

// Options configure a Model
type Options struct {
	Width        int // Dialog box width, 0 for the default
	Labels       dialog.Labels
	ScrollPolicy dialog.ScrollPolicy
	Dialogs      map[string]dialog.Descriptor // Named dialogs listed on the demo page
	Allocator    *dialog.Allocator            // nil shares the process-wide allocator
	Logger       zerolog.Logger               // Zero value disables logging
	AltScreen    bool
}

// Model renders a document and feeds it keyboard input. In demo mode the
// document holds a page with controls that open dialogs; in single mode it
// holds one dialog and the program quits once that dialog resolves.
type Model struct {
	opts    Options
	ctx     context.Context
	cancel  context.CancelFunc
	doc     *dom.Document
	factory *dialog.Factory
	home    *views.HomeModel
	single  *dialog.Outcome

	keys   keyMap
	help   help.Model
	status statusbar.Model
	alert  bubbleup.AlertModel

	pending []tea.Cmd
	last    string
	result  Result
	width   int
	height  int
	log     zerolog.Logger
}

func newModel(opts Options) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	doc := dom.NewDocument(dom.WithLogger(opts.Logger))

	factory := dialog.NewFactory(doc,
		dialog.WithAllocator(opts.Allocator),
		dialog.WithScrollPolicy(opts.ScrollPolicy),
		dialog.WithLabels(opts.Labels),
		dialog.WithLogger(opts.Logger),
	)

	m := &Model{
		opts:    opts,
		ctx:     ctx,
		cancel:  cancel,
		doc:     doc,
		factory: factory,
		keys:    newKeyMap(),
		help:    help.New(),
		status: statusbar.New(
			statusbar.ColorConfig{Foreground: style.StatusAccent, Background: style.StatusPurple},
			statusbar.ColorConfig{Foreground: style.StatusPlain, Background: style.StatusPanel},
			statusbar.ColorConfig{Foreground: style.StatusPlain, Background: style.StatusPanel},
			statusbar.ColorConfig{Foreground: style.StatusAccent, Background: style.StatusTeal},
		),
		alert:  *bubbleup.NewAlertModel(alertWidth, false, alertDuration),
		width:  80,
		height: 24,
		log:    opts.Logger.With().Str("component", "tui").Logger(),
	}
	m.status.SetSize(m.width)
	return m
}

// NewDemo creates the demo page: a table of named dialogs plus buttons
// wired to the alert and confirm presets. Without configured dialogs a
// built-in sample set is listed.
func NewDemo(opts Options) *Model {
	if len(opts.Dialogs) == 0 {
		opts.Dialogs = sampleDialogs()
	}
	m := newModel(opts)

	names := make([]string, 0, len(opts.Dialogs))
	for name := range opts.Dialogs {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]views.DialogEntry, 0, len(names))
	for _, name := range names {
		d := opts.Dialogs[name]
		entries = append(entries, views.DialogEntry{
			Name:    name,
			Title:   d.Title,
			Buttons: len(d.Buttons),
			Close:   d.Options.ShowCloseButton,
		})
	}

	m.home = views.NewHomeModel(m.doc, entries, views.Handlers{
		OnAlert: func() {
			m.track(sourceAlert, m.factory.Alert("Error", loremMessage))
		},
		OnConfirm: func() {
			m.track(sourceConfirm, m.factory.Confirm("Confirm action", loremMessage))
		},
		OnOpen: func(name string) {
			if d, ok := m.opts.Dialogs[name]; ok {
				m.track(name, m.factory.Open(d))
			}
		},
	})
	m.doc.Focus(m.home.TableElement())
	m.refresh()
	return m
}

// NewSingle creates a model showing the dialog open builds. The program
// quits when that dialog resolves.
func NewSingle(opts Options, open func(*dialog.Factory) *dialog.Outcome) *Model {
	m := newModel(opts)
	m.single = open(m.factory)
	m.track(sourceDialog, m.single)
	m.refresh()
	return m
}

// Document exposes the rendered document
func (m *Model) Document() *dom.Document {
	return m.doc
}

// Factory exposes the dialog factory bound to the document
func (m *Model) Factory() *dialog.Factory {
	return m.factory
}

// Result returns how the program ended
func (m *Model) Result() Result {
	return m.result
}

// Close abandons any outstanding waits
func (m *Model) Close() {
	m.cancel()
}

// track schedules a wait on out; the resulting outcomeMsg reports it
func (m *Model) track(source string, out *dialog.Outcome) {
	ctx := m.ctx
	m.pending = append(m.pending, func() tea.Msg {
		v, err := out.Wait(ctx)
		return outcomeMsg{id: out.ID(), source: source, value: v, err: err}
	})
	m.log.Debug().Str("source", source).Int("modal_id", out.ID()).Msg("waiting for dialog")
}

// flush hands the queued commands to the runtime
func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// openDialogs returns the mounted dialog overlays, bottom first
func (m *Model) openDialogs() []*dom.Element {
	return m.doc.Overlays(dialog.ClassOverlay)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.alert.Init(), m.flush())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.status.SetSize(msg.Width)
		if m.home != nil {
			m.home.SetSize(msg.Width, msg.Height-2)
		}

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			m.result.Interrupted = true
			return m, tea.Quit
		case msg.String() == "q" && m.home != nil && len(m.openDialogs()) == 0:
			return m, tea.Quit
		}
		m.handleKey(msg)

	case outcomeMsg:
		if msg.err != nil {
			return m, nil
		}
		m.last = fmt.Sprintf("%s → %v", msg.source, msg.value)
		m.log.Info().Str("source", msg.source).Int("modal_id", msg.id).Interface("value", msg.value).Msg("dialog outcome")
		if m.single != nil && msg.id == m.single.ID() {
			m.result = Result{Value: msg.value, Resolved: true}
			return m, tea.Quit
		}
		cmds = append(cmds, m.reportOutcome(msg))
	}

	outAlert, cmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	cmds = append(cmds, cmd, m.flush())

	m.refresh()
	return m, tea.Batch(cmds...)
}

// handleKey routes a key through the document. Keys nobody claimed scroll
// the page, unless a dialog holds the scroll lock.
func (m *Model) handleKey(msg tea.KeyMsg) {
	key, shift := translateKey(msg)
	ev := m.doc.KeyDown(key, shift)
	if m.home != nil && !ev.DefaultPrevented() && !m.doc.ScrollLocked() {
		m.home.Scroll(key)
	}
}

// reportOutcome pops a toast describing how a page dialog ended
func (m *Model) reportOutcome(msg outcomeMsg) tea.Cmd {
	switch msg.source {
	case sourceAlert, sourceConfirm:
		if ok, _ := msg.value.(bool); ok {
			return m.alert.NewAlertCmd(bubbleup.InfoKey, "Confirmed")
		}
		return m.alert.NewAlertCmd(bubbleup.WarnKey, "Cancelled or closed")
	}
	return m.alert.NewAlertCmd(bubbleup.InfoKey, fmt.Sprintf("%s: %v", msg.source, msg.value))
}

// refresh syncs the help bindings and status bar with the document
func (m *Model) refresh() {
	overlays := m.openDialogs()
	closable := false
	if n := len(overlays); n > 0 {
		closable = overlays[n-1].FindByClass(dialog.ClassClose) != nil
	}
	m.keys.setDialogOpen(len(overlays) > 0, closable)
	if m.home == nil {
		m.keys.Move.SetEnabled(false)
		m.keys.Scroll.SetEnabled(false)
		m.keys.Quit.SetEnabled(false)
	}

	lock := "free"
	if m.doc.ScrollLocked() {
		lock = "locked"
	}
	m.status.SetContent(
		"modal",
		"focus "+describe(m.doc.ActiveElement()),
		fmt.Sprintf("dialogs %d · scroll %s", len(overlays), lock),
		m.last,
	)
}

// describe names an element for the status bar
func describe(el *dom.Element) string {
	switch {
	case el == nil:
		return "page"
	case el.ID != "":
		return "#" + el.ID
	case el.Class != "":
		return "." + el.Class
	default:
		return el.Tag
	}
}

// View implements tea.Model
func (m *Model) View() string {
	active := m.doc.ActiveElement()

	footer := lipgloss.JoinVertical(lipgloss.Left,
		m.help.View(m.keys),
		m.status.View(),
	)
	bodyHeight := m.height - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var background string
	if m.home != nil {
		background = m.home.View(active)
	}
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(background)

	for _, overlay := range m.openDialogs() {
		box := renderDialog(overlay, active, m.opts.Width, m.width)
		body = renderWithBackground(box, body, m.width, bodyHeight)
	}

	return m.alert.Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

// sampleDialogs are listed on the demo page when none are configured
func sampleDialogs() map[string]dialog.Descriptor {
	return map[string]dialog.Descriptor{
		"release": {
			Title:   "Ship release v2.4?",
			Message: "Pick where the build goes. Production restarts every node.",
			Buttons: []dialog.ButtonSpec{
				{Label: "Later", ID: "later", Class: dialog.CancelClass, Value: "later"},
				{Label: "Staging", ID: "staging", Value: "staging"},
				{Label: "Production", ID: "production", Class: "btn-danger", Value: "production"},
			},
			Options: dialog.Options{ShowCloseButton: true},
		},
		"unsaved": {
			Title:   "Unsaved changes",
			Message: "Save your edits before leaving?",
			Buttons: []dialog.ButtonSpec{
				{Label: "Discard", ID: "discard", Class: "btn-danger", Value: "discard"},
				{Label: "Save", ID: "save", Class: dialog.ConfirmClass, Value: "save"},
			},
		},
	}
}
