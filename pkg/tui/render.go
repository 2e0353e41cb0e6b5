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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/uprockcom/modal/pkg/dialog"
	"github.com/uprockcom/modal/pkg/dom"
	"github.com/uprockcom/modal/pkg/tui/style"
)

const defaultDialogWidth = 60

// dialogWidth clamps the configured width to the screen
func dialogWidth(width, screenWidth int) int {
	if width <= 0 {
		width = defaultDialogWidth
	}
	if width > screenWidth-4 {
		width = screenWidth - 4
	}
	if width < 20 {
		width = 20
	}
	return width
}

// renderDialog draws one mounted overlay as a box, unplaced.
// active is the focused element, used to highlight the focused control.
func renderDialog(overlay, active *dom.Element, width, screenWidth int) string {
	box := overlay.FindByClass(dialog.ClassContent)
	if box == nil {
		return ""
	}

	modalWidth := dialogWidth(width, screenWidth)
	inner := modalWidth - 4
	modalBg := style.ModalBg

	line := func() lipgloss.Style {
		return lipgloss.NewStyle().Background(modalBg).Width(inner)
	}
	spacer := line().Render("")

	var parts []string
	hasCloser := false

	for _, el := range box.Children() {
		switch {
		case el.HasClass(dialog.ClassClose):
			hasCloser = true
			closeStyle := lipgloss.NewStyle().
				Foreground(style.SilverMist).
				Background(style.ButtonBg).
				Padding(0, 1)
			if el == active {
				closeStyle = closeStyle.
					Foreground(style.GhostWhite).
					Background(style.CrimsonPulse).
					Bold(true)
			}
			parts = append(parts, line().Align(lipgloss.Right).Render(closeStyle.Render(textOf(el))))

		case el.HasClass(dialog.ClassTitle):
			titleStyle := line().
				Foreground(titleColor(box)).
				Bold(true).
				Align(lipgloss.Center)
			parts = append(parts, titleStyle.Render(el.Text), spacer)

		case el.HasClass(dialog.ClassMessage):
			contentStyle := line().
				Foreground(style.GhostWhite).
				Align(lipgloss.Left)
			parts = append(parts, contentStyle.Render(el.Text), spacer)

		case el.HasClass(dialog.ClassButtons):
			buttons := el.Children()
			if len(buttons) == 0 {
				continue
			}
			gap := lipgloss.NewStyle().Background(modalBg).Render("  ")
			var actionParts []string
			for i, b := range buttons {
				if i > 0 {
					actionParts = append(actionParts, gap)
				}
				actionParts = append(actionParts, buttonStyle(b, b == active).Render(b.Text))
			}
			actionsView := lipgloss.JoinHorizontal(lipgloss.Left, actionParts...)
			parts = append(parts, line().Align(lipgloss.Center).Render(actionsView))
		}
	}

	if hasCloser {
		hint := line().
			Foreground(style.DimGray).
			Align(lipgloss.Center).
			Render("esc to close")
		parts = append(parts, hint)
	}

	modalContent := lipgloss.JoinVertical(lipgloss.Center, parts...)

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.PurpleHaze).
		Background(modalBg).
		Padding(1, 2).
		Width(modalWidth)

	return modalStyle.Render(modalContent)
}

// textOf joins the text of el and its descendants
func textOf(el *dom.Element) string {
	var sb strings.Builder
	el.Walk(func(n *dom.Element) bool {
		sb.WriteString(n.Text)
		return true
	})
	return sb.String()
}

// renderWithBackground centres box over a dimmed copy of background
func renderWithBackground(box, background string, screenWidth, screenHeight int) string {
	dimStyle := lipgloss.NewStyle().Foreground(style.DimGray)
	dimmedBg := dimStyle.Render(ansi.Strip(background))

	boxLines := strings.Split(box, "\n")
	startY := (screenHeight - len(boxLines)) / 2
	if startY < 0 {
		startY = 0
	}

	bgLines := strings.Split(dimmedBg, "\n")
	for len(bgLines) < screenHeight {
		bgLines = append(bgLines, strings.Repeat(" ", screenWidth))
	}

	result := make([]string, screenHeight)
	for i := 0; i < screenHeight; i++ {
		boxLineIdx := i - startY
		if boxLineIdx >= 0 && boxLineIdx < len(boxLines) {
			result[i] = compositeLine(boxLines[boxLineIdx], bgLines[i], screenWidth)
		} else {
			result[i] = bgLines[i]
		}
	}

	return strings.Join(result, "\n")
}

// compositeLine centres a box line on a background line using ANSI-aware operations
func compositeLine(boxLine, bgLine string, screenWidth int) string {
	boxWidth := ansi.StringWidth(boxLine)
	if boxWidth > screenWidth {
		return ansi.Truncate(boxLine, screenWidth, "...")
	}

	leftPad := (screenWidth - boxWidth) / 2

	bgWidth := ansi.StringWidth(bgLine)
	if bgWidth < screenWidth {
		bgLine += strings.Repeat(" ", screenWidth-bgWidth)
	} else if bgWidth > screenWidth {
		bgLine = ansi.Truncate(bgLine, screenWidth, "")
	}

	leftSegment := ""
	if leftPad > 0 {
		leftSegment = ansi.Truncate(bgLine, leftPad, "")
	}

	rightSegment := ""
	if rightStart := leftPad + boxWidth; rightStart < screenWidth {
		rightSegment = ansi.TruncateLeft(bgLine, rightStart, "")
	}

	return leftSegment + boxLine + rightSegment
}
