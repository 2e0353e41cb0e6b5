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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uprockcom/modal/pkg/dom"
)

func TestConfirmScenarios(t *testing.T) {
	tests := []struct {
		name   string
		button string
		want   bool
	}{
		{"confirm", ConfirmButtonID, true},
		{"cancel", CancelButtonID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordingSurface()
			out := NewFactory(s).Confirm("Delete?", "This cannot be undone")

			assert.Nil(t, s.Body().FindByClass(ClassClose))
			assert.Equal(t, "This cannot be undone", s.Body().FindByClass(ClassMessage).Text)
			s.Body().FindByID(tt.button).Click()

			v, done := out.Value()
			require.True(t, done)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestConfirmButtonOrder(t *testing.T) {
	s := newRecordingSurface()
	NewFactory(s).Confirm("Delete?", "")

	group := s.Body().FindByClass(ClassButtons).Children()
	require.Len(t, group, 2)
	assert.Equal(t, "Cancel", group[0].Text)
	assert.True(t, group[0].HasClass(CancelClass))
	assert.Equal(t, "Confirm", group[1].Text)
	assert.True(t, group[1].HasClass(ConfirmClass))
	assert.Equal(t, CancelButtonID, s.ActiveElement().ID)
}

func TestConfirmIgnoresEscape(t *testing.T) {
	s := newRecordingSurface()
	out := NewFactory(s).Confirm("Delete?", "")

	s.KeyDown(dom.KeyEscape, false)

	_, done := out.Value()
	assert.False(t, done)
}

func TestAlertEscapeResolvesFalse(t *testing.T) {
	s := newRecordingSurface()
	out := NewFactory(s).Alert("Error", "Bad input")

	require.Len(t, s.overlays(), 1)
	assert.Empty(t, s.Body().FindByClass(ClassButtons).Children())

	s.KeyDown(dom.KeyEscape, false)

	v, done := out.Value()
	require.True(t, done)
	assert.Equal(t, false, v)
	assert.Empty(t, s.overlays())
}

func TestAlertEnterOnCloseResolvesFalse(t *testing.T) {
	s := newRecordingSurface()
	out := NewFactory(s).Alert("Error", "")

	s.KeyDown(dom.KeyEnter, false)

	v, done := out.Value()
	require.True(t, done)
	assert.Equal(t, false, v)
}

func TestSequentialConfirms(t *testing.T) {
	s := newRecordingSurface()
	trigger := s.trigger("btnConfirm")
	f := NewFactory(s, WithAllocator(NewAllocator()))

	first := f.Confirm("One?", "")
	s.KeyDown(dom.KeyTab, false)
	s.KeyDown(dom.KeyTab, false) // wraps to Cancel
	assert.Equal(t, CancelButtonID, s.ActiveElement().ID)
	s.KeyDown(dom.KeyTab, false)
	s.KeyDown(dom.KeyEnter, false)
	assert.Equal(t, trigger, s.ActiveElement())

	second := f.Confirm("Two?", "")
	s.KeyDown(dom.KeyTab, true) // wraps to Confirm
	assert.Equal(t, ConfirmButtonID, s.ActiveElement().ID)
	s.KeyDown(dom.KeyTab, true)
	s.KeyDown(dom.KeyEnter, false)

	v1, _ := first.Value()
	v2, _ := second.Value()
	assert.Equal(t, true, v1)
	assert.Equal(t, false, v2)
	assert.Less(t, first.ID(), second.ID())
	assert.Equal(t, trigger, s.ActiveElement())
	assert.False(t, s.ScrollLocked())
}

func TestCustomLabels(t *testing.T) {
	s := newRecordingSurface()
	f := NewFactory(s, WithLabels(Labels{Confirm: "Confirmer", Cancel: "Annuler"}))

	f.Confirm("Confirmation", "")
	assert.Equal(t, "Confirmer", s.Body().FindByID(ConfirmButtonID).Text)
	assert.Equal(t, "Annuler", s.Body().FindByID(CancelButtonID).Text)
	assert.Equal(t, "Close", f.Labels().Close)
}
