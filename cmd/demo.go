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

	"github.com/uprockcom/modal/pkg/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive demo page",
	Long: `Open a page with buttons for the alert and confirm dialogs and a table
of the named dialogs from the config file. Every outcome is reported in
a toast and in the status bar. Press q to quit.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	opts, err := tuiOptions()
	if err != nil {
		return err
	}
	if err := tui.RunDemo(cmd.Context(), opts); err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}
	return nil
}
