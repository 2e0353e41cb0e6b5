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
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uprockcom/modal/pkg/config"
	"github.com/uprockcom/modal/pkg/logging"
	"github.com/uprockcom/modal/pkg/paths"
	"github.com/uprockcom/modal/pkg/tui"
)

var (
	cfgFile  string
	logFile  string
	logDebug bool

	cfg       *config.Config
	logger    = zerolog.Nop()
	logCloser io.Closer
)

// ExitError carries a process exit status without an error message
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

var rootCmd = &cobra.Command{
	Use:   "modal",
	Short: "Accessible modal dialogs for the terminal",
	Long: `modal shows focus-trapping dialogs in the terminal and prints how they
were answered, so shell scripts can ask questions the way a web page would.

Named dialogs live in ~/.modal/config.yml under "dialogs".`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// SetVersion sets the version reported by --version
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default %s)", paths.ConfigFile()))
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", fmt.Sprintf("log file (default %s)", paths.LogFile()))
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "log at debug level")
}

// setup loads the config and opens the log file before every command
func setup(cmd *cobra.Command, args []string) error {
	if cmd == completionCmd {
		return nil
	}

	v := viper.GetViper()
	if err := config.Init(v, cfgFile); err != nil {
		return err
	}
	if logFile != "" {
		v.Set("log.file", logFile)
	}
	if logDebug {
		v.Set("log.level", "debug")
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	l, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	logger = l
	logCloser = closer
	logger.Debug().Str("command", cmd.CommandPath()).Str("config", v.ConfigFileUsed()).Msg("starting")
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}

// configPath is the file add writes to
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return paths.ConfigFile()
}

// tuiOptions builds the dialog runtime options from the loaded config
func tuiOptions() (tui.Options, error) {
	policy, err := cfg.ScrollPolicy()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Width:        cfg.Dialog.Width,
		Labels:       cfg.Labels,
		ScrollPolicy: policy,
		Dialogs:      cfg.Dialogs,
		Logger:       logger,
		AltScreen:    cfg.Dialog.AltScreen,
	}, nil
}

// optionalArg returns args[i] or ""
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
