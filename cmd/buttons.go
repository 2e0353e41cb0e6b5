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

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/uprockcom/modal/pkg/dialog"
)

var (
	errInvalidButton = errors.New("invalid button, want label=value[:id[:class]]")
	errMissingTitle  = errors.New("a dialog needs a title")
	errNameWithFlags = errors.New("a named dialog cannot be combined with dialog flags")
)

// dialogFlags are shared by the commands that build a dialog from flags
type dialogFlags struct {
	title   string
	message string
	buttons []string
	close   bool
}

func (f *dialogFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "dialog title")
	cmd.Flags().StringVarP(&f.message, "message", "m", "", "dialog message")
	cmd.Flags().StringArrayVarP(&f.buttons, "button", "b", nil, "button as label=value[:id[:class]], repeatable")
	cmd.Flags().BoolVar(&f.close, "close", false, "show a close button (resolves false)")
}

// descriptor builds and validates a dialog from the flags
func (f *dialogFlags) descriptor() (dialog.Descriptor, error) {
	if strings.TrimSpace(f.title) == "" {
		return dialog.Descriptor{}, errMissingTitle
	}

	d := dialog.Descriptor{
		Title:   f.title,
		Message: f.message,
		Options: dialog.Options{ShowCloseButton: f.close},
	}
	for _, raw := range f.buttons {
		b, err := parseButton(raw)
		if err != nil {
			return dialog.Descriptor{}, err
		}
		d.Buttons = append(d.Buttons, b)
	}
	if err := d.Validate(); err != nil {
		return dialog.Descriptor{}, err
	}
	return d, nil
}

// parseButton parses label=value[:id[:class]]. The value is read as a YAML
// scalar, so true, 42 and 1.5 become typed values. Without an id one is
// derived from the label.
func parseButton(raw string) (dialog.ButtonSpec, error) {
	label, rest, ok := strings.Cut(raw, "=")
	label = strings.TrimSpace(label)
	if !ok || label == "" {
		return dialog.ButtonSpec{}, fmt.Errorf("%q: %w", raw, errInvalidButton)
	}

	parts := strings.SplitN(rest, ":", 3)
	spec := dialog.ButtonSpec{
		Label: label,
		ID:    buttonID(label),
		Value: parts[0],
	}

	var value any
	if err := yaml.Unmarshal([]byte(parts[0]), &value); err != nil {
		return dialog.ButtonSpec{}, fmt.Errorf("%q: %w", raw, errInvalidButton)
	}
	if value != nil {
		spec.Value = value
	}

	if len(parts) > 1 && parts[1] != "" {
		spec.ID = parts[1]
	}
	if len(parts) > 2 {
		spec.Class = parts[2]
	}
	return spec, nil
}

// buttonID derives an element id from a label: "Save all" becomes btn-save-all
func buttonID(label string) string {
	return "btn-" + strings.Join(strings.Fields(strings.ToLower(label)), "-")
}
