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

// Package style holds the colour palette shared by the TUI views
package style

import "github.com/charmbracelet/lipgloss"

// Primary Colors
var (
	PurpleHaze   = lipgloss.Color("#7D56F4")
	CrimsonPulse = lipgloss.Color("#E0245E")
	SunsetGlow   = lipgloss.Color("#FFB454")
)

// Accent Colors
var (
	OceanTide = lipgloss.Color("#2EC4B6")
)

// Grayscale
var (
	GhostWhite = lipgloss.Color("#F8F8FF")
	SilverMist = lipgloss.Color("#A8A8B3")
	DimGray    = lipgloss.Color("#5C5C66")
)

// Surfaces
var (
	ModalBg  = lipgloss.Color("235")
	ButtonBg = lipgloss.Color("237")
)

// Focus
var (
	FocusedBorder   = OceanTide
	UnfocusedBorder = DimGray
)

// Status bar column colours
var (
	StatusAccent = lipgloss.AdaptiveColor{Light: "#F8F8FF", Dark: "#F8F8FF"}
	StatusPurple = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}
	StatusPlain  = lipgloss.AdaptiveColor{Light: "#1A1A24", Dark: "#A8A8B3"}
	StatusPanel  = lipgloss.AdaptiveColor{Light: "#E4E4EA", Dark: "#2A2A36"}
	StatusTeal   = lipgloss.AdaptiveColor{Light: "#1B8A83", Dark: "#2EC4B6"}
)
