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

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uprockcom/modal/pkg/dialog"
)

// Run launches the program for m and returns how it ended
func Run(ctx context.Context, m *Model, options ...tea.ProgramOption) (Result, error) {
	defer m.Close()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.opts.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, options...)

	p := tea.NewProgram(m, opts...)
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	if fm, ok := finalModel.(*Model); ok {
		return fm.Result(), nil
	}
	return Result{}, nil
}

// RunDialog shows the dialog open builds and returns once it resolves
func RunDialog(ctx context.Context, opts Options, open func(*dialog.Factory) *dialog.Outcome) (Result, error) {
	return Run(ctx, NewSingle(opts, open))
}

// RunDemo runs the demo page until the user quits
func RunDemo(ctx context.Context, opts Options) error {
	_, err := Run(ctx, NewDemo(opts))
	return err
}
