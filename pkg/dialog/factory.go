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

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/uprockcom/modal/pkg/dom"
)

// Classes placed on the dialog elements. The terminal renderer keys off them.
const (
	ClassOverlay = "modal-overlay"
	ClassContent = "modal-content"
	ClassTitle   = "modal-title"
	ClassMessage = "modal-message"
	ClassButtons = "group-buttons"
	ClassButton  = "btn"
	ClassClose   = "btn-close"
)

// Dismissed is the value an outcome resolves to when the close control is used
const Dismissed = false

// TitleID returns the element id of an instance's title, which the dialog's
// aria-labelledby points at
func TitleID(id int) string {
	return "modal-" + strconv.Itoa(id)
}

// Factory opens dialogs on one Surface
type Factory struct {
	surface Surface
	ids     *Allocator
	policy  ScrollPolicy
	lock    *ScrollLock
	labels  Labels
	log     zerolog.Logger
}

// Option configures a Factory
type Option func(*Factory)

// WithAllocator sets the identity allocator. Factories share a process-wide
// allocator by default.
func WithAllocator(a *Allocator) Option {
	return func(f *Factory) {
		if a != nil {
			f.ids = a
		}
	}
}

// WithScrollPolicy sets how overlapping dialogs share the scroll lock
func WithScrollPolicy(p ScrollPolicy) Option {
	return func(f *Factory) {
		f.policy = p
	}
}

// WithLabels sets the labels used for the close control and the presets
func WithLabels(l Labels) Option {
	return func(f *Factory) {
		f.labels = l.withDefaults()
	}
}

// WithLogger sets the logger
func WithLogger(l zerolog.Logger) Option {
	return func(f *Factory) {
		f.log = l.With().Str("component", "dialog").Logger()
	}
}

// NewFactory creates a factory for surface
func NewFactory(surface Surface, opts ...Option) *Factory {
	f := &Factory{
		surface: surface,
		ids:     processAllocator,
		policy:  ScrollRefCounted,
		labels:  DefaultLabels,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.lock = NewScrollLock(surface, f.policy)
	return f
}

// ScrollLock exposes the factory's scroll lock bookkeeping
func (f *Factory) ScrollLock() *ScrollLock {
	return f.lock
}

// Labels returns the labels in use
func (f *Factory) Labels() Labels {
	return f.labels
}

// instance is one open dialog
type instance struct {
	factory *Factory
	id      int
	root    *dom.Element
	trigger *dom.Element
	outcome *Outcome
	detach  []func()
	closed  bool
}

// finish tears the instance down and fulfils its outcome. Only the first
// call does anything.
func (i *instance) finish(source string, v any) {
	if i.closed {
		return
	}
	i.closed = true

	f := i.factory
	f.surface.Unmount(i.root)
	for _, detach := range i.detach {
		detach()
	}
	i.detach = nil
	f.lock.Release()
	f.surface.RestoreFocus(i.trigger)
	i.outcome.resolve(v)

	f.log.Debug().
		Int("modal_id", i.id).
		Str("button_id", source).
		Interface("value", v).
		Msg("dialog resolved")
}

// Open builds the dialog described by d, mounts it and traps focus in it.
// The returned outcome is fulfilled by the first button or close activation.
func (f *Factory) Open(d Descriptor) *Outcome {
	id := f.ids.NextID()
	titleID := TitleID(id)

	inst := &instance{
		factory: f,
		id:      id,
		trigger: f.surface.ActiveElement(),
		outcome: newOutcome(id),
	}

	overlay := &dom.Element{Tag: dom.TagDiv, Class: ClassOverlay}
	box := overlay.AppendChild(&dom.Element{Tag: dom.TagDialog, Class: ClassContent})
	box.SetAttr("role", "dialog").
		SetAttr("aria-modal", "true").
		SetAttr("aria-labelledby", titleID)
	inst.root = overlay

	// The close control comes first so it is first in tab order
	var closer *dom.Element
	if d.Options.ShowCloseButton {
		closer = box.AppendChild(&dom.Element{Tag: dom.TagButton, Class: ClassClose, Title: f.labels.Close})
		closer.AppendChild(&dom.Element{Tag: dom.TagSpan, Text: "×"}).SetAttr("aria-hidden", "true")
	}

	box.AppendChild(&dom.Element{Tag: dom.TagHeading, ID: titleID, Class: ClassTitle, Text: d.Title})
	if d.Message != "" {
		box.AppendChild(&dom.Element{Tag: dom.TagParagraph, Class: ClassMessage, Text: d.Message})
	}

	group := box.AppendChild(&dom.Element{Tag: dom.TagDiv, Class: ClassButtons})
	for _, spec := range d.Buttons {
		b := group.AppendChild(&dom.Element{
			Tag:   dom.TagButton,
			ID:    spec.ID,
			Class: strings.TrimSpace(ClassButton + " " + spec.Class),
			Text:  spec.Label,
		})
		inst.detach = append(inst.detach, b.AddEventListener(dom.EventClick, func(*dom.Event) {
			inst.finish(spec.ID, spec.Value)
		}))
	}

	if closer != nil {
		inst.detach = append(inst.detach, closer.AddEventListener(dom.EventClick, func(*dom.Event) {
			inst.finish(ClassClose, Dismissed)
		}))
	}

	f.lock.Acquire()
	f.surface.Mount(overlay)

	trap := NewFocusTrap(f.surface, overlay, closer)
	inst.detach = append(inst.detach, trap.Attach())
	trap.FocusInitial()

	f.log.Debug().
		Int("modal_id", id).
		Str("title", d.Title).
		Int("buttons", len(d.Buttons)).
		Bool("close_button", closer != nil).
		Int("focusables", len(trap.Focusables())).
		Msg("dialog opened")

	return inst.outcome
}
