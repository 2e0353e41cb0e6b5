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

// Package dom is a minimal element tree the terminal front-end renders.
//
// It models just enough of a browser document for modal dialogs: elements
// with ids, classes, ARIA attributes and tab indexes, event listeners with
// bubbling, and a Document that tracks the active element and the page
// scroll lock.
package dom

import (
	"slices"
	"strings"
)

// Element tags understood by the renderer and the focus rules
const (
	TagDiv       = "div"
	TagDialog    = "dialog"
	TagHeading   = "h1"
	TagParagraph = "p"
	TagSpan      = "span"
	TagButton    = "button"
	TagLink      = "a"
	TagInput     = "input"
	TagSelect    = "select"
	TagTextarea  = "textarea"
	TagTable     = "table"
)

// nativeFocusable are tags that take focus without a tab index
var nativeFocusable = map[string]bool{
	TagButton:   true,
	TagInput:    true,
	TagSelect:   true,
	TagTextarea: true,
}

// Element is a node in the tree
type Element struct {
	Tag      string
	ID       string
	Class    string // Space separated class list
	Text     string
	Title    string
	Href     string
	TabIndex *int // nil when no explicit tab index is set

	attrs     map[string]string
	children  []*Element
	parent    *Element
	listeners map[EventType][]*listener
}

type listener struct {
	fn      Listener
	removed bool
}

// NewElement creates a detached element
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// TabStop returns a tab index value for Element.TabIndex
func TabStop(n int) *int {
	return &n
}

// SetAttr sets an attribute such as role or aria-labelledby
func (e *Element) SetAttr(name, value string) *Element {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	return e
}

// Attr returns an attribute value
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasClass reports whether class is in the element's class list
func (e *Element) HasClass(class string) bool {
	return slices.Contains(strings.Fields(e.Class), class)
}

// Parent returns the parent element, nil when detached or root
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// AppendChild adds child as the last child, detaching it from any previous parent
func (e *Element) AppendChild(child *Element) *Element {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// RemoveChild detaches child. Returns false if child is not a direct child.
func (e *Element) RemoveChild(child *Element) bool {
	idx := slices.Index(e.children, child)
	if idx < 0 {
		return false
	}
	e.children = slices.Delete(e.children, idx, idx+1)
	child.parent = nil
	return true
}

// Contains reports whether other is e or one of its descendants
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Walk visits e and its descendants in document order.
// Returning false from fn skips the node's subtree.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// FindByID returns the first element in the subtree with the given id
func (e *Element) FindByID(id string) *Element {
	return e.find(func(n *Element) bool { return n.ID == id })
}

// FindByClass returns the first element in the subtree carrying class
func (e *Element) FindByClass(class string) *Element {
	return e.find(func(n *Element) bool { return n.HasClass(class) })
}

func (e *Element) find(match func(*Element) bool) *Element {
	var found *Element
	e.Walk(func(n *Element) bool {
		if found != nil {
			return false
		}
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// IsFocusable reports whether the element can hold keyboard focus:
// native interactive tags, anything with an href, and anything with a
// non-negative explicit tab index.
func (e *Element) IsFocusable() bool {
	if nativeFocusable[e.Tag] {
		return true
	}
	if e.Href != "" {
		return true
	}
	return e.TabIndex != nil && *e.TabIndex >= 0
}

// Focusables returns the focusable elements of the subtree in document order.
// The result is empty, never nil-panicking, when nothing is focusable.
func (e *Element) Focusables() []*Element {
	out := []*Element{}
	e.Walk(func(n *Element) bool {
		if n.IsFocusable() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// AddEventListener registers fn for events of type t reaching this element.
// The returned func detaches the listener; calling it more than once is safe.
func (e *Element) AddEventListener(t EventType, fn Listener) func() {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]*listener)
	}
	l := &listener{fn: fn}
	e.listeners[t] = append(e.listeners[t], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		e.listeners[t] = slices.DeleteFunc(e.listeners[t], func(x *listener) bool { return x == l })
	}
}

// ListenerCount returns how many listeners of type t are attached
func (e *Element) ListenerCount(t EventType) int {
	return len(e.listeners[t])
}

// Click dispatches a click event at the element, bubbling to its ancestors
func (e *Element) Click() *Event {
	ev := &Event{Type: EventClick}
	dispatch(e, ev)
	return ev
}
