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
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uprockcom/modal/pkg/dom"
)

// keyMap holds the bindings shown in the help bar. Routing itself goes
// through the document; these only describe it.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Dismiss  key.Binding
	Move     key.Binding
	Scroll   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧⇥", "previous"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("↵/space", "activate"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑↓", "choose dialog"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setDialogOpen switches the bindings between page and dialog mode
func (k *keyMap) setDialogOpen(open, closable bool) {
	k.Dismiss.SetEnabled(open && closable)
	k.Move.SetEnabled(!open)
	k.Scroll.SetEnabled(!open)
	k.Quit.SetEnabled(!open)
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Activate, k.Dismiss, k.Move, k.Scroll, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Activate, k.Dismiss},
		{k.Move, k.Scroll, k.Quit},
	}
}

// translateKey maps a terminal key to the document's key name and shift state
func translateKey(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyTab:
		return dom.KeyTab, false
	case tea.KeyShiftTab:
		return dom.KeyTab, true
	case tea.KeyEsc:
		return dom.KeyEscape, false
	case tea.KeyEnter:
		return dom.KeyEnter, false
	case tea.KeySpace:
		return dom.KeySpace, false
	case tea.KeyPgUp:
		return dom.KeyPageUp, false
	case tea.KeyPgDown:
		return dom.KeyPageDown, false
	}
	return msg.String(), false
}
