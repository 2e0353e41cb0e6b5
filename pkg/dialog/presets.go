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

package dialog

// Button ids and classes used by the confirm preset
const (
	ConfirmButtonID = "btn-confirm-modal-ok"
	CancelButtonID  = "btn-confirm-modal-ko"
	ConfirmClass    = "btn-confirm"
	CancelClass     = "btn-cancel"
)

// Labels are the user-visible strings of the built-in controls
type Labels struct {
	Confirm string `yaml:"confirm" mapstructure:"confirm"`
	Cancel  string `yaml:"cancel" mapstructure:"cancel"`
	Close   string `yaml:"close" mapstructure:"close"`
}

// DefaultLabels are used for any label left empty
var DefaultLabels = Labels{
	Confirm: "Confirm",
	Cancel:  "Cancel",
	Close:   "Close",
}

func (l Labels) withDefaults() Labels {
	if l.Confirm == "" {
		l.Confirm = DefaultLabels.Confirm
	}
	if l.Cancel == "" {
		l.Cancel = DefaultLabels.Cancel
	}
	if l.Close == "" {
		l.Close = DefaultLabels.Close
	}
	return l
}

// ConfirmDescriptor describes a Cancel/Confirm dialog without a close control
func (f *Factory) ConfirmDescriptor(title, message string) Descriptor {
	return Descriptor{
		Title:   title,
		Message: message,
		Buttons: []ButtonSpec{
			{Label: f.labels.Cancel, ID: CancelButtonID, Class: CancelClass, Value: false},
			{Label: f.labels.Confirm, ID: ConfirmButtonID, Class: ConfirmClass, Value: true},
		},
	}
}

// Confirm opens a confirmation dialog. It resolves to true only when
// Confirm is activated.
func (f *Factory) Confirm(title, message string) *Outcome {
	return f.Open(f.ConfirmDescriptor(title, message))
}

// AlertDescriptor describes a dialog whose only exit is the close control
func (f *Factory) AlertDescriptor(title, message string) Descriptor {
	return Descriptor{
		Title:   title,
		Message: message,
		Options: Options{ShowCloseButton: true},
	}
}

// Alert opens an alert dialog. It always resolves to false: the close
// control is the only way out and carries no acknowledgement.
func (f *Factory) Alert(title, message string) *Outcome {
	return f.Open(f.AlertDescriptor(title, message))
}
