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
)

func TestAllocatorMonotonic(t *testing.T) {
	a := NewAllocator()
	assert.Equal(t, 1, a.NextID())
	assert.Equal(t, 2, a.NextID())
	assert.Equal(t, 3, a.NextID())
}

func TestOutcomeSingleResolution(t *testing.T) {
	o := newOutcome(7)
	assert.True(t, o.resolve("first"))
	assert.False(t, o.resolve("second"))

	v, done := o.Value()
	assert.True(t, done)
	assert.Equal(t, "first", v)
	assert.Equal(t, 7, o.ID())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		buttons []ButtonSpec
		close   bool
		wantErr error
	}{
		{"no controls", nil, false, ErrNoControls},
		{"close only", nil, true, nil},
		{"ok", []ButtonSpec{{ID: "a"}, {ID: "b"}}, false, nil},
		{"missing id", []ButtonSpec{{Label: "A"}}, false, ErrEmptyButtonID},
		{"duplicate", []ButtonSpec{{ID: "a"}, {ID: "a"}}, false, ErrDuplicateButtonID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Descriptor{Title: "t", Buttons: tt.buttons, Options: Options{ShowCloseButton: tt.close}}
			err := d.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseScrollPolicy(t *testing.T) {
	p, err := ParseScrollPolicy("")
	require.NoError(t, err)
	assert.Equal(t, ScrollRefCounted, p)

	p, err = ParseScrollPolicy("shared")
	require.NoError(t, err)
	assert.Equal(t, ScrollShared, p)

	_, err = ParseScrollPolicy("global")
	assert.Error(t, err)
}

func TestScrollLockReleaseWithoutHolders(t *testing.T) {
	s := newRecordingSurface()
	l := NewScrollLock(s, "")

	l.Release()

	assert.Equal(t, 0, l.Holders())
	assert.Equal(t, ScrollRefCounted, l.Policy())
	assert.False(t, s.ScrollLocked())
}

func TestFocusTrapEmptySet(t *testing.T) {
	s := newRecordingSurface()
	root := s.Body()
	trap := NewFocusTrap(s, root, nil)

	assert.NotPanics(t, func() {
		trap.FocusInitial()
		s.KeyDown("tab", false)
	})
	assert.Empty(t, trap.Focusables())
}
