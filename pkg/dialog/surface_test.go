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

// recordingSurface is a dom.Document that remembers what the factory asked of it
type recordingSurface struct {
	*dom.Document

	mounts    int
	unmounts  int
	lockCalls []bool
	restored  []*dom.Element
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{Document: dom.NewDocument()}
}

func (s *recordingSurface) Mount(root *dom.Element) {
	s.mounts++
	s.Document.Mount(root)
}

func (s *recordingSurface) Unmount(root *dom.Element) {
	s.unmounts++
	s.Document.Unmount(root)
}

func (s *recordingSurface) SetScrollLocked(locked bool) {
	s.lockCalls = append(s.lockCalls, locked)
	s.Document.SetScrollLocked(locked)
}

func (s *recordingSurface) RestoreFocus(el *dom.Element) {
	s.restored = append(s.restored, el)
	s.Document.RestoreFocus(el)
}

// overlays returns the mounted dialog roots
func (s *recordingSurface) overlays() []*dom.Element {
	return s.Overlays(ClassOverlay)
}

// trigger mounts a page button and focuses it, as if the user had just pressed it
func (s *recordingSurface) trigger(id string) *dom.Element {
	b := s.Body().AppendChild(&dom.Element{Tag: dom.TagButton, ID: id})
	s.Focus(b)
	return b
}
