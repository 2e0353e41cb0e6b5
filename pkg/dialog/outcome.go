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
	"context"
	"sync"
)

// Outcome is the pending result of one dialog instance. It is fulfilled
// exactly once.
type Outcome struct {
	id    int
	once  sync.Once
	done  chan struct{}
	value any
}

func newOutcome(id int) *Outcome {
	return &Outcome{id: id, done: make(chan struct{})}
}

// ID returns the instance identity the dialog title is labelled with
func (o *Outcome) ID() int {
	return o.id
}

// resolve fulfils the outcome. Only the first call has any effect.
func (o *Outcome) resolve(v any) bool {
	resolved := false
	o.once.Do(func() {
		o.value = v
		close(o.done)
		resolved = true
	})
	return resolved
}

// Done is closed once the outcome is fulfilled
func (o *Outcome) Done() <-chan struct{} {
	return o.done
}

// Value returns the resolved value and whether the outcome is fulfilled yet
func (o *Outcome) Value() (any, bool) {
	select {
	case <-o.done:
		return o.value, true
	default:
		return nil, false
	}
}

// Wait blocks until the outcome is fulfilled or ctx is done. Cancelling ctx
// does not close the dialog.
func (o *Outcome) Wait(ctx context.Context) (any, error) {
	select {
	case <-o.done:
		return o.value, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// WaitBool is Wait for dialogs whose values are booleans. Non-boolean
// values report false.
func (o *Outcome) WaitBool(ctx context.Context) (bool, error) {
	v, err := o.Wait(ctx)
	if err != nil {
		return false, err
	}
	b, _ := v.(bool)
	return b, nil
}
