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

package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/uprockcom/modal/pkg/dom"
	"github.com/uprockcom/modal/pkg/tui/style"
)

// Element ids of the page controls
const (
	DialogTableID   = "page-dialogs"
	AlertButtonID   = "btnAlert"
	ConfirmButtonID = "btnConfirm"
)

const pageText = `Every dialog opened from this page traps the keyboard: Tab and
Shift+Tab cycle through the dialog's own controls and never reach the page
behind it. Alerts close with Esc; confirmations ignore Esc and wait for an
explicit choice.

While a dialog is open the page cannot scroll. Close it and PgUp/PgDn work
again, and focus goes back to whichever control opened the dialog.

Lorem ipsum dolor sit amet consectetur adipisicing elit. Quisquam, quod
voluptatibus! Dolorum, voluptas. Nesciunt, aperiam. Explicabo nemo
voluptatem ipsa, laudantium sed aliquid temporibus minima at praesentium
asperiores, eveniet ut cumque.

Lorem ipsum dolor sit amet consectetur adipisicing elit. Officiis animi
iure corporis eum, architecto sint blanditiis quaerat voluptates
laboriosam ab nesciunt.`

// DialogEntry is one row of the dialog table
type DialogEntry struct {
	Name    string
	Title   string
	Buttons int
	Close   bool
}

// Handlers are called when the page's controls are activated
type Handlers struct {
	OnAlert   func()
	OnConfirm func()
	OnOpen    func(name string)
}

// HomeModel is the page shown behind the dialogs
type HomeModel struct {
	table    table.Model
	viewport viewport.Model
	width    int
	height   int
	entries  []DialogEntry

	root       *dom.Element
	tableEl    *dom.Element
	alertBtn   *dom.Element
	confirmBtn *dom.Element
}

// NewHomeModel builds the page and mounts its controls into doc
func NewHomeModel(doc *dom.Document, entries []DialogEntry, handlers Handlers) *HomeModel {
	columns := []table.Column{
		{Title: "NAME", Width: 16},
		{Title: "TITLE", Width: 32},
		{Title: "BUTTONS", Width: 8},
		{Title: "CLOSE", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(5),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(style.PurpleHaze).
		BorderBottom(true).
		Bold(true).
		Foreground(style.OceanTide)

	s.Selected = s.Selected.
		Foreground(style.GhostWhite).
		Background(style.ButtonBg).
		Bold(false)

	t.SetStyles(s)

	h := &HomeModel{
		table:    t,
		viewport: viewport.New(60, 8),
		entries:  entries,
	}
	h.viewport.SetContent(pageText)
	h.updateTableRows()

	h.root = &dom.Element{Tag: dom.TagDiv, ID: "page", Class: "page"}
	h.root.AppendChild(&dom.Element{Tag: dom.TagHeading, Text: "modal"})
	h.tableEl = h.root.AppendChild(&dom.Element{Tag: dom.TagTable, ID: DialogTableID, TabIndex: dom.TabStop(0)})
	actions := h.root.AppendChild(&dom.Element{Tag: dom.TagDiv, Class: "page-actions"})
	h.alertBtn = actions.AppendChild(&dom.Element{Tag: dom.TagButton, ID: AlertButtonID, Text: "Show alert"})
	h.confirmBtn = actions.AppendChild(&dom.Element{Tag: dom.TagButton, ID: ConfirmButtonID, Text: "Show confirm"})

	h.tableEl.AddEventListener(dom.EventKeyDown, func(ev *dom.Event) {
		switch ev.Key {
		case "up", "k":
			h.table.MoveUp(1)
			ev.PreventDefault()
		case "down", "j":
			h.table.MoveDown(1)
			ev.PreventDefault()
		case "home":
			h.table.GotoTop()
			ev.PreventDefault()
		case "end":
			h.table.GotoBottom()
			ev.PreventDefault()
		case dom.KeyEnter:
			if name := h.Selected(); name != "" && handlers.OnOpen != nil {
				ev.PreventDefault()
				handlers.OnOpen(name)
			}
		}
	})
	if handlers.OnAlert != nil {
		h.alertBtn.AddEventListener(dom.EventClick, func(*dom.Event) { handlers.OnAlert() })
	}
	if handlers.OnConfirm != nil {
		h.confirmBtn.AddEventListener(dom.EventClick, func(*dom.Event) { handlers.OnConfirm() })
	}

	doc.Mount(h.root)
	return h
}

// TableElement returns the focusable element standing for the dialog table
func (h *HomeModel) TableElement() *dom.Element {
	return h.tableEl
}

// Selected returns the name of the highlighted dialog, or "" when the table is empty
func (h *HomeModel) Selected() string {
	idx := h.table.Cursor()
	if idx < 0 || idx >= len(h.entries) {
		return ""
	}
	return h.entries[idx].Name
}

// Scroll moves the page text for PgUp/PgDn. It reports whether the key was a scroll key.
func (h *HomeModel) Scroll(key string) bool {
	switch key {
	case dom.KeyPageUp:
		h.viewport.ViewUp()
	case dom.KeyPageDown:
		h.viewport.ViewDown()
	default:
		return false
	}
	return true
}

// ScrollPercent reports how far the page text is scrolled
func (h *HomeModel) ScrollPercent() float64 {
	return h.viewport.ScrollPercent()
}

// View renders the page. active is the focused element, used for highlighting.
func (h *HomeModel) View(active *dom.Element) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(style.PurpleHaze).
		Bold(true)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(style.SilverMist)

	if active == h.tableEl {
		h.table.Focus()
	} else {
		h.table.Blur()
	}
	borderColor := style.UnfocusedBorder
	if active == h.tableEl {
		borderColor = style.FocusedBorder
	}
	tableView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Render(h.table.View())

	var buttons []string
	for _, b := range []*dom.Element{h.alertBtn, h.confirmBtn} {
		s := lipgloss.NewStyle().
			Foreground(style.SilverMist).
			Background(style.ButtonBg).
			Padding(0, 2).
			MarginRight(2)
		if b == active {
			s = s.Foreground(style.GhostWhite).Background(style.OceanTide).Bold(true)
		}
		buttons = append(buttons, s.Render(b.Text))
	}

	textView := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false).
		BorderForeground(style.DimGray).
		Render(h.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("modal")+"  "+subtitleStyle.Render("focus-trapping dialogs"),
		"",
		tableView,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		"",
		textView,
	)
}

// SetSize updates the view dimensions
func (h *HomeModel) SetSize(width, height int) {
	h.width = width
	h.height = height

	// Title, blank lines, buttons and the text borders
	const overhead = 9
	tableHeight := len(h.entries) + 2
	if tableHeight > 8 {
		tableHeight = 8
	}
	if tableHeight < 3 {
		tableHeight = 3
	}
	h.table.SetHeight(tableHeight)
	h.table.SetWidth(width - 2)

	textHeight := height - tableHeight - overhead
	if textHeight < 3 {
		textHeight = 3
	}
	h.viewport.Width = width
	h.viewport.Height = textHeight
}

// updateTableRows converts the dialog entries to table rows
func (h *HomeModel) updateTableRows() {
	rows := make([]table.Row, 0, len(h.entries))
	for _, e := range h.entries {
		closeCol := "—"
		if e.Close {
			closeCol = "×"
		}
		rows = append(rows, table.Row{e.Name, e.Title, strings.Repeat("■", e.Buttons), closeCol})
	}
	h.table.SetRows(rows)
}
