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

import "github.com/uprockcom/modal/pkg/dom"

// FocusTrap keeps keyboard focus inside one dialog root while it is open.
//
// The focusable set is captured once, when the trap is created; content
// added to the root afterwards is not part of it. Tab on the last element
// wraps to the first and Shift+Tab on the first wraps to the last. Every
// other Tab is left to the host. Escape never propagates past the root and
// clicks the close control when there is one.
type FocusTrap struct {
	surface    Surface
	root       *dom.Element
	closer     *dom.Element
	focusables []*dom.Element
}

// NewFocusTrap snapshots the focusable elements of root. closer may be nil.
func NewFocusTrap(surface Surface, root, closer *dom.Element) *FocusTrap {
	return &FocusTrap{
		surface:    surface,
		root:       root,
		closer:     closer,
		focusables: surface.QueryFocusable(root),
	}
}

// Focusables returns the snapshot taken at creation
func (t *FocusTrap) Focusables() []*dom.Element {
	return t.focusables
}

func (t *FocusTrap) first() *dom.Element {
	if len(t.focusables) == 0 {
		return nil
	}
	return t.focusables[0]
}

func (t *FocusTrap) last() *dom.Element {
	if len(t.focusables) == 0 {
		return nil
	}
	return t.focusables[len(t.focusables)-1]
}

// FocusInitial focuses the first focusable element. With an empty set
// focus is left where it is.
func (t *FocusTrap) FocusInitial() {
	if first := t.first(); first != nil {
		t.surface.Focus(first)
	}
}

// Attach installs the keydown handler on the root and returns its detach func
func (t *FocusTrap) Attach() func() {
	return t.root.AddEventListener(dom.EventKeyDown, t.HandleKeyDown)
}

// HandleKeyDown applies the Tab wrap and Escape rules to one keydown event
func (t *FocusTrap) HandleKeyDown(ev *dom.Event) {
	switch ev.Key {
	case dom.KeyTab:
		if len(t.focusables) == 0 {
			return
		}
		active := t.surface.ActiveElement()
		if ev.Shift && active == t.first() {
			ev.PreventDefault()
			t.surface.Focus(t.last())
		} else if !ev.Shift && active == t.last() {
			ev.PreventDefault()
			t.surface.Focus(t.first())
		}

	case dom.KeyEscape:
		ev.StopPropagation()
		if t.closer != nil {
			t.closer.Click()
		}
	}
}
