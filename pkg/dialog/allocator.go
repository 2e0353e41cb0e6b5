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

import "sync/atomic"

// Allocator hands out instance identities. Identities start at 1, only ever
// increase and are never reused.
type Allocator struct {
	last atomic.Int64
}

// NewAllocator creates an allocator whose first identity is 1
func NewAllocator() *Allocator {
	return &Allocator{}
}

// NextID returns the next identity
func (a *Allocator) NextID() int {
	return int(a.last.Add(1))
}

// processAllocator backs factories created without WithAllocator so that
// identities stay unique across every factory in the process.
var processAllocator = NewAllocator()
