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
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/uprockcom/modal/pkg/config"
	"github.com/uprockcom/modal/pkg/tui/style"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List named dialogs",
	Long:    `List the named dialogs from the config file with their buttons.`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(cfg.Dialogs) == 0 {
		fmt.Fprintln(out, "No dialogs configured.")
		fmt.Fprintln(out, "Add one with: modal add <name> --title \"...\" --button Label=value")
		return nil
	}

	printDialogs(out, cfg)

	fmt.Fprintln(out, "\nCommands:")
	fmt.Fprintln(out, "  modal open <name>    - Show a dialog")
	fmt.Fprintln(out, "  modal demo           - Browse dialogs interactively")
	return nil
}

// printDialogs renders the configured dialogs as a table
func printDialogs(w io.Writer, c *config.Config) {
	header := lipgloss.NewStyle().Bold(true).Foreground(style.PurpleHaze).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.DimGray)).
		Headers("NAME", "TITLE", "BUTTONS", "CLOSE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, name := range c.DialogNames() {
		d := c.Dialogs[name]
		labels := ""
		for i, b := range d.Buttons {
			if i > 0 {
				labels += ", "
			}
			labels += b.Label
		}
		if labels == "" {
			labels = "-"
		}
		t.Row(name, d.Title, labels+" ("+strconv.Itoa(len(d.Buttons))+")", yesNo(d.Options.ShowCloseButton))
	}

	fmt.Fprintln(w, t.Render())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
