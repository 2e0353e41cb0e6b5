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
	"gopkg.in/yaml.v3"

	"github.com/uprockcom/modal/pkg/config"
	"github.com/uprockcom/modal/pkg/dialog"
	"github.com/uprockcom/modal/pkg/tui"
)

var (
	openFile  string
	openFlags dialogFlags
)

var openCmd = &cobra.Command{
	Use:   "open [name]",
	Short: "Show any dialog and print the chosen value",
	Long: `Show a dialog and print the value of the button that closed it as YAML.
The close button and Escape print false.

The dialog comes from one of:
  a name from the "dialogs" section of the config file
  a YAML file given with --file
  the --title, --message, --button and --close flags

Examples:
  modal open release
  modal open --file deploy.yml
  modal open -t "Deploy where?" -b Staging=staging -b Production=production:prod:btn-danger --close`,
	Args:              cobra.MatchAll(cobra.MaximumNArgs(1), noFlagsWithName),
	ValidArgsFunction: completeDialogNames,
	RunE:              runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&openFile, "file", "f", "", "read the dialog from a YAML file")
	openFlags.register(openCmd)
	openCmd.MarkFlagsMutuallyExclusive("file", "title")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	d, err := resolveDescriptor(args)
	if err != nil {
		return err
	}

	opts, err := tuiOptions()
	if err != nil {
		return err
	}

	res, err := tui.RunDialog(cmd.Context(), opts, func(f *dialog.Factory) *dialog.Outcome {
		return f.Open(d)
	})
	if err != nil {
		return fmt.Errorf("failed to run dialog: %w", err)
	}
	if res.Interrupted {
		return errInterrupted
	}

	out, err := yaml.Marshal(res.Value)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// dialogSourceFlags describe a dialog and cannot be combined with a name
var dialogSourceFlags = []string{"file", "title", "message", "button", "close"}

// noFlagsWithName rejects a dialog name combined with flags that would
// otherwise be ignored
func noFlagsWithName(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	for _, name := range dialogSourceFlags {
		if cmd.Flags().Changed(name) {
			return fmt.Errorf("--%s with dialog %q: %w", name, args[0], errNameWithFlags)
		}
	}
	return nil
}

// resolveDescriptor picks the dialog source: a config name, a file or flags
func resolveDescriptor(args []string) (dialog.Descriptor, error) {
	switch {
	case len(args) == 1:
		return cfg.Lookup(args[0])
	case openFile != "":
		return config.ReadDescriptor(openFile)
	default:
		return openFlags.descriptor()
	}
}

// completeDialogNames offers the configured dialog names
func completeDialogNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || cfg == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return cfg.DialogNames(), cobra.ShellCompDirectiveNoFileComp
}
