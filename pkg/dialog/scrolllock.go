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

import "fmt"

// ScrollPolicy decides how overlapping dialogs share the page scroll lock
type ScrollPolicy string

const (
	// ScrollRefCounted keeps the page locked until the last open dialog closes
	ScrollRefCounted ScrollPolicy = "refcount"
	// ScrollShared clears the lock whenever any dialog closes, even if
	// another one is still open
	ScrollShared ScrollPolicy = "shared"
)

// ParseScrollPolicy parses a config value. The empty string selects ScrollRefCounted.
func ParseScrollPolicy(s string) (ScrollPolicy, error) {
	switch ScrollPolicy(s) {
	case "", ScrollRefCounted:
		return ScrollRefCounted, nil
	case ScrollShared:
		return ScrollShared, nil
	}
	return "", fmt.Errorf("unknown scroll lock policy %q (want %q or %q)", s, ScrollRefCounted, ScrollShared)
}

// ScrollLock tracks which dialogs hold the page scroll lock
type ScrollLock struct {
	surface Surface
	policy  ScrollPolicy
	holders int
}

// NewScrollLock creates a lock that drives surface's scroll flag
func NewScrollLock(surface Surface, policy ScrollPolicy) *ScrollLock {
	if policy == "" {
		policy = ScrollRefCounted
	}
	return &ScrollLock{surface: surface, policy: policy}
}

// Acquire locks page scrolling on behalf of one dialog
func (l *ScrollLock) Acquire() {
	l.holders++
	l.surface.SetScrollLocked(true)
}

// Release gives up one dialog's hold on the lock
func (l *ScrollLock) Release() {
	if l.holders > 0 {
		l.holders--
	}
	if l.policy == ScrollShared || l.holders == 0 {
		l.surface.SetScrollLocked(false)
	}
}

// Holders returns the number of dialogs currently holding the lock
func (l *ScrollLock) Holders() int {
	return l.holders
}

// Policy returns the lock's sharing policy
func (l *ScrollLock) Policy() ScrollPolicy {
	return l.policy
}
