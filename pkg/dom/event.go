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

// EventType names an event
type EventType string

const (
	EventKeyDown EventType = "keydown"
	EventClick   EventType = "click"
)

// Key names carried by keydown events
const (
	KeyTab      = "tab"
	KeyEscape   = "esc"
	KeyEnter    = "enter"
	KeySpace    = " "
	KeyPageUp   = "pgup"
	KeyPageDown = "pgdown"
)

// Listener handles an event
type Listener func(*Event)

// Event is dispatched at a target and bubbles up through its ancestors
type Event struct {
	Type  EventType
	Key   string // Keydown only
	Shift bool   // Keydown only

	Target        *Element
	CurrentTarget *Element

	stopped   bool
	prevented bool
}

// StopPropagation keeps the event from reaching further ancestors
func (e *Event) StopPropagation() { e.stopped = true }

// PreventDefault cancels the document's default action for the event
func (e *Event) PreventDefault() { e.prevented = true }

// PropagationStopped reports whether a listener stopped propagation
func (e *Event) PropagationStopped() bool { return e.stopped }

// DefaultPrevented reports whether a listener cancelled the default action
func (e *Event) DefaultPrevented() bool { return e.prevented }

// dispatch runs listeners from target up to the root. The propagation path
// is fixed before the first listener runs, so a listener that detaches
// nodes does not change which ancestors see the event.
func dispatch(target *Element, ev *Event) {
	ev.Target = target

	var path []*Element
	for n := target; n != nil; n = n.parent {
		path = append(path, n)
	}

	for _, n := range path {
		ev.CurrentTarget = n
		ls := append([]*listener(nil), n.listeners[ev.Type]...)
		for _, l := range ls {
			if l.removed {
				continue
			}
			l.fn(ev)
		}
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil
}
