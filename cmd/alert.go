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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uprockcom/modal/pkg/dialog"
	"github.com/uprockcom/modal/pkg/tui"
)

var alertCmd = &cobra.Command{
	Use:   "alert <title> [message]",
	Short: "Show a message until it is dismissed",
	Long: `Show an alert dialog with a close button. Escape or the close button
dismisses it. Prints false, the value every alert resolves to.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAlert,
}

func init() {
	rootCmd.AddCommand(alertCmd)
}

func runAlert(cmd *cobra.Command, args []string) error {
	title, message := args[0], optionalArg(args, 1)

	opts, err := tuiOptions()
	if err != nil {
		return err
	}

	res, err := tui.RunDialog(cmd.Context(), opts, func(f *dialog.Factory) *dialog.Outcome {
		return f.Alert(title, message)
	})
	if err != nil {
		return fmt.Errorf("failed to run dialog: %w", err)
	}
	if res.Interrupted {
		return errInterrupted
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Bool())
	return nil
}
