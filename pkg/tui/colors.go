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
	"github.com/charmbracelet/lipgloss"

	"github.com/uprockcom/modal/pkg/dialog"
	"github.com/uprockcom/modal/pkg/dom"
	"github.com/uprockcom/modal/pkg/tui/style"
)

// primaryClasses mark buttons drawn with the accent colour
var primaryClasses = []string{dialog.ConfirmClass, "btn-primary"}

func isPrimary(b *dom.Element) bool {
	for _, c := range primaryClasses {
		if b.HasClass(c) {
			return true
		}
	}
	return false
}

// buttonStyle picks the style of a dialog button from its class and focus
func buttonStyle(b *dom.Element, focused bool) lipgloss.Style {
	primary := isPrimary(b)
	danger := b.HasClass("btn-danger")

	if focused {
		bg := style.DimGray
		switch {
		case danger:
			bg = style.CrimsonPulse
		case primary:
			bg = style.OceanTide
		}
		return lipgloss.NewStyle().
			Foreground(style.GhostWhite).
			Background(bg).
			Bold(true).
			Padding(0, 3)
	}

	fg := style.SilverMist
	switch {
	case danger:
		fg = style.CrimsonPulse
	case primary:
		fg = style.OceanTide
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(style.ButtonBg).
		Padding(0, 3)
}

// titleColor picks the title colour: alerts are red, confirmations amber
func titleColor(box *dom.Element) lipgloss.Color {
	group := box.FindByClass(dialog.ClassButtons)
	switch {
	case group != nil && len(group.Children()) == 0:
		return style.CrimsonPulse
	case box.FindByClass(dialog.ConfirmClass) != nil:
		return style.SunsetGlow
	default:
		return style.OceanTide
	}
}
