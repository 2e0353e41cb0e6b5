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

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uprockcom/modal/pkg/dialog"
	"github.com/uprockcom/modal/pkg/tui"
)

var errInterrupted = errors.New("interrupted")

var confirmCmd = &cobra.Command{
	Use:   "confirm <title> [message]",
	Short: "Ask a yes/no question",
	Long: `Show a confirmation dialog with Cancel and Confirm buttons.

Prints true or false. The exit status is 0 only when the user confirmed,
so the command can guard other commands:

  modal confirm "Delete the build cache?" && rm -rf .cache`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfirm,
}

func init() {
	rootCmd.AddCommand(confirmCmd)
}

func runConfirm(cmd *cobra.Command, args []string) error {
	title, message := args[0], optionalArg(args, 1)

	opts, err := tuiOptions()
	if err != nil {
		return err
	}

	res, err := tui.RunDialog(cmd.Context(), opts, func(f *dialog.Factory) *dialog.Outcome {
		return f.Confirm(title, message)
	})
	if err != nil {
		return fmt.Errorf("failed to run dialog: %w", err)
	}
	if res.Interrupted {
		return errInterrupted
	}

	confirmed := res.Bool()
	fmt.Fprintln(cmd.OutOrStdout(), confirmed)
	if !confirmed {
		return &ExitError{Code: 1}
	}
	return nil
}
