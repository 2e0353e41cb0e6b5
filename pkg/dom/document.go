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

package dom

import (
	"slices"

	"github.com/rs/zerolog"
)

// Document owns the body element, the focused element and the scroll lock.
// It is not safe for concurrent use; the TUI drives it from its update loop.
type Document struct {
	body         *Element
	active       *Element
	scrollLocked bool
	log          zerolog.Logger
}

// Option configures a Document
type Option func(*Document)

// WithLogger sets the logger used for focus and mount tracing
func WithLogger(l zerolog.Logger) Option {
	return func(d *Document) {
		d.log = l.With().Str("component", "dom").Logger()
	}
}

// NewDocument creates an empty document
func NewDocument(opts ...Option) *Document {
	d := &Document{
		body: NewElement("body"),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Body returns the root element
func (d *Document) Body() *Element {
	return d.body
}

// Attached reports whether el is part of the document
func (d *Document) Attached(el *Element) bool {
	return el != nil && d.body.Contains(el)
}

// ActiveElement returns the focused element, nil when focus is on the body
func (d *Document) ActiveElement() *Element {
	if d.active != nil && !d.Attached(d.active) {
		d.active = nil
	}
	return d.active
}

// Focus moves focus to el. Detached, non-focusable and inert elements are
// ignored.
func (d *Document) Focus(el *Element) {
	if el == nil || !d.Attached(el) || !el.IsFocusable() {
		return
	}
	if root := d.ModalRoot(); root != nil && !root.Contains(el) {
		return
	}
	d.active = el
	d.log.Trace().Str("id", el.ID).Msg("focus")
}

// Blur drops focus back to the body
func (d *Document) Blur() {
	d.active = nil
}

// Mount appends root to the body
func (d *Document) Mount(root *Element) {
	d.body.AppendChild(root)
	d.log.Debug().Str("id", root.ID).Str("class", root.Class).Msg("mount")
}

// Unmount removes root from the body. Focus inside root falls back to the body.
func (d *Document) Unmount(root *Element) {
	if !d.body.RemoveChild(root) {
		return
	}
	if d.active != nil && root.Contains(d.active) {
		d.active = nil
	}
	d.log.Debug().Str("id", root.ID).Str("class", root.Class).Msg("unmount")
}

// QueryFocusable returns the focusable elements under root in document order
func (d *Document) QueryFocusable(root *Element) []*Element {
	return root.Focusables()
}

// RestoreFocus focuses el if it is still in the document
func (d *Document) RestoreFocus(el *Element) {
	if el == nil || !d.Attached(el) {
		return
	}
	d.Focus(el)
}

// SetScrollLocked sets the page scroll lock
func (d *Document) SetScrollLocked(locked bool) {
	d.scrollLocked = locked
}

// ScrollLocked reports whether page scrolling is disabled
func (d *Document) ScrollLocked() bool {
	return d.scrollLocked
}

// Overlays returns the top-level children of the body carrying class,
// in mount order
func (d *Document) Overlays(class string) []*Element {
	var out []*Element
	for _, c := range d.body.children {
		if c.HasClass(class) {
			out = append(out, c)
		}
	}
	return out
}

// ModalRoot returns the topmost body child holding an aria-modal="true"
// element, or nil. While one is mounted everything outside it is inert.
func (d *Document) ModalRoot() *Element {
	for i := len(d.body.children) - 1; i >= 0; i-- {
		c := d.body.children[i]
		modal := c.find(func(n *Element) bool {
			v, _ := n.Attr("aria-modal")
			return v == "true"
		})
		if modal != nil {
			return c
		}
	}
	return nil
}

// KeyDown dispatches a keydown at the active element (or the body) and then
// runs the default action unless a listener prevented it. With a modal root
// mounted, keys aimed outside it are delivered to the root instead.
func (d *Document) KeyDown(key string, shift bool) *Event {
	scope := d.body
	target := d.ActiveElement()
	if root := d.ModalRoot(); root != nil {
		scope = root
		if target == nil || !root.Contains(target) {
			target = root
		}
	}
	if target == nil {
		target = d.body
	}
	ev := &Event{Type: EventKeyDown, Key: key, Shift: shift}
	dispatch(target, ev)
	if !ev.prevented {
		d.defaultKeyAction(ev, scope)
	}
	return ev
}

// defaultKeyAction is what the host does when nobody intervenes: Tab walks
// the tab order of scope with wrap-around, Enter and Space click buttons
// inside scope.
func (d *Document) defaultKeyAction(ev *Event, scope *Element) {
	switch ev.Key {
	case KeyTab:
		order := scope.Focusables()
		if len(order) == 0 {
			return
		}
		idx := slices.Index(order, d.ActiveElement())
		switch {
		case idx < 0 && ev.Shift:
			idx = len(order) - 1
		case idx < 0:
			idx = 0
		case ev.Shift:
			idx = (idx - 1 + len(order)) % len(order)
		default:
			idx = (idx + 1) % len(order)
		}
		d.Focus(order[idx])

	case KeyEnter, KeySpace:
		active := d.ActiveElement()
		if active == nil || !scope.Contains(active) {
			return
		}
		if active.Tag == TagButton || (ev.Key == KeyEnter && active.Href != "") {
			active.Click()
		}
	}
}
