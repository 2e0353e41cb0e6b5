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
	"strings"

	"github.com/spf13/cobra"

	"github.com/uprockcom/modal/pkg/config"
	"github.com/uprockcom/modal/pkg/dialog"
)

var (
	addFile  string
	addFlags dialogFlags
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Save a named dialog to the config file",
	Long: `Save a dialog under a name in the "dialogs" section of the config file,
replacing any dialog with the same name. Other settings in the file are
kept. The dialog is built from flags or read from --file.

Example:
  modal add release -t "Ship it?" -b Later=later -b Ship=ship::btn-confirm --close
  modal open release`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "read the dialog from a YAML file")
	addFlags.register(addCmd)
	addCmd.MarkFlagsMutuallyExclusive("file", "title")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(strings.TrimSpace(args[0]))
	if name == "" {
		return fmt.Errorf("dialog name must not be empty")
	}

	var (
		d   dialog.Descriptor
		err error
	)
	if addFile != "" {
		d, err = config.ReadDescriptor(addFile)
	} else {
		d, err = addFlags.descriptor()
	}
	if err != nil {
		return err
	}

	path := configPath()
	if err := config.SaveDialog(path, name, d); err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}

	logger.Info().Str("dialog", name).Str("config", path).Msg("dialog saved")
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Saved dialog %q to %s\n", name, path)
	fmt.Fprintf(cmd.OutOrStdout(), "   Open it with: modal open %s\n", name)
	return nil
}
