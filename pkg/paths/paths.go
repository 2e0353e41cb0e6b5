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

// Package paths resolves where modal keeps its files
package paths

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the config directory when set
const HomeEnv = "MODAL_HOME"

// ConfigDir returns the directory holding config and logs (~/.modal)
func ConfigDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".modal"
	}
	return filepath.Join(home, ".modal")
}

// ConfigFile returns the path of config.yml
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yml")
}

// LogFile returns the default log file path
func LogFile() string {
	return filepath.Join(ConfigDir(), "modal.log")
}
