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

// Surface is what a dialog needs from the host UI. *dom.Document implements it.
type Surface interface {
	// Mount inserts a dialog root into the host
	Mount(root *dom.Element)
	// Unmount removes a previously mounted root
	Unmount(root *dom.Element)
	// QueryFocusable lists the focusable elements under root in tab order
	QueryFocusable(root *dom.Element) []*dom.Element
	// ActiveElement returns the focused element, or nil
	ActiveElement() *dom.Element
	// Focus moves keyboard focus to el
	Focus(el *dom.Element)
	// RestoreFocus focuses el if it is still part of the host
	RestoreFocus(el *dom.Element)
	// SetScrollLocked enables or disables background scrolling
	SetScrollLocked(locked bool)
}
