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

// outcomeMsg is sent when a dialog's outcome is fulfilled (or the wait was
// abandoned because the program is shutting down)
type outcomeMsg struct {
	id     int
	source string // What opened the dialog: "alert", "confirm" or a dialog name
	value  any
	err    error
}

// Result is returned when the TUI exits, telling the caller how the dialog ended
type Result struct {
	Value       any  // Resolved value of the dialog
	Resolved    bool // False when the program ended before the dialog resolved
	Interrupted bool // The user pressed ctrl+c
}

// Bool reports the resolved value as a boolean; anything but true is false
func (r Result) Bool() bool {
	b, _ := r.Value.(bool)
	return r.Resolved && b
}
