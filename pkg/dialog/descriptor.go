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

// Package dialog builds modal dialogs on a Surface and resolves each one to
// a single outcome.
//
// A dialog is described by a Descriptor and opened with Factory.Open, which
// mounts an overlay, traps keyboard focus inside it and returns an Outcome.
// The outcome is fulfilled exactly once, by whichever control the user
// activates; at that moment the overlay is unmounted, the scroll lock is
// released and focus returns to the element that held it before the dialog
// opened.
//
//	f := dialog.NewFactory(doc)
//	out := f.Confirm("Delete?", "This cannot be undone")
//	ok, err := out.WaitBool(ctx)
package dialog

import (
	"errors"
	"fmt"
)

// Descriptor describes one dialog. It is read once by Factory.Open and never modified.
type Descriptor struct {
	Title   string       `yaml:"title" mapstructure:"title"`
	Message string       `yaml:"message,omitempty" mapstructure:"message"`
	Buttons []ButtonSpec `yaml:"buttons,omitempty" mapstructure:"buttons"`
	Options Options      `yaml:"options,omitempty" mapstructure:"options"`
}

// ButtonSpec is one action button
type ButtonSpec struct {
	Label string `yaml:"label" mapstructure:"label"`
	ID    string `yaml:"id" mapstructure:"id"`                 // Unique within one descriptor
	Class string `yaml:"class,omitempty" mapstructure:"class"` // Style class, e.g. btn-confirm
	Value any    `yaml:"value" mapstructure:"value"`           // Returned by the outcome when activated
}

// Options tweak the dialog chrome
type Options struct {
	ShowCloseButton bool `yaml:"show_close_button,omitempty" mapstructure:"show_close_button"`
}

var (
	ErrEmptyButtonID     = errors.New("button has no id")
	ErrDuplicateButtonID = errors.New("duplicate button id")
	ErrNoControls        = errors.New("dialog has no buttons and no close button")
)

// Validate checks the descriptor for caller mistakes Factory.Open does not
// guard against. Open itself never validates.
func (d Descriptor) Validate() error {
	if len(d.Buttons) == 0 && !d.Options.ShowCloseButton {
		return ErrNoControls
	}
	seen := make(map[string]bool, len(d.Buttons))
	for i, b := range d.Buttons {
		if b.ID == "" {
			return fmt.Errorf("button %d (%q): %w", i, b.Label, ErrEmptyButtonID)
		}
		if seen[b.ID] {
			return fmt.Errorf("button %q: %w", b.ID, ErrDuplicateButtonID)
		}
		seen[b.ID] = true
	}
	return nil
}
