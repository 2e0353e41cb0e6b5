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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uprockcom/modal/pkg/dialog"
)

const sampleConfig = `
dialog:
  width: 72
  scroll_lock: shared
labels:
  confirm: Confirmer
  cancel: Annuler
  close: Fermer
dialogs:
  deploy:
    title: Deploy to production?
    message: This restarts every node.
    buttons:
      - label: Not now
        id: later
        class: btn-cancel
        value: false
      - label: Deploy
        id: go
        class: btn-confirm
        value: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, "config.yml", sampleConfig)
	v := viper.New()
	require.NoError(t, Init(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 72, cfg.Dialog.Width)
	assert.True(t, cfg.Dialog.AltScreen)
	policy, err := cfg.ScrollPolicy()
	require.NoError(t, err)
	assert.Equal(t, dialog.ScrollShared, policy)
	assert.Equal(t, dialog.Labels{Confirm: "Confirmer", Cancel: "Annuler", Close: "Fermer"}, cfg.Labels)

	assert.Equal(t, []string{"deploy"}, cfg.DialogNames())
	d, err := cfg.Lookup("Deploy")
	require.NoError(t, err)
	assert.Equal(t, "Deploy to production?", d.Title)
	require.Len(t, d.Buttons, 2)
	assert.Equal(t, "go", d.Buttons[1].ID)
	assert.Equal(t, true, d.Buttons[1].Value)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	v := viper.New()
	require.NoError(t, Init(v, filepath.Join(t.TempDir(), "missing.yml")))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Dialog.Width)
	assert.Equal(t, "refcount", cfg.Dialog.ScrollLock)
	assert.Equal(t, dialog.DefaultLabels, cfg.Labels)
	assert.Empty(t, cfg.DialogNames())

	_, err = cfg.Lookup("nope")
	assert.ErrorIs(t, err, ErrDialogNotFound)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MODAL_DIALOG_WIDTH", "40")
	v := viper.New()
	require.NoError(t, Init(v, filepath.Join(t.TempDir(), "missing.yml")))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Dialog.Width)
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	path := writeFile(t, "config.yml", "dialog:\n  scroll_lock: sometimes\n")
	v := viper.New()
	require.NoError(t, Init(v, path))

	_, err := Load(v)
	assert.Error(t, err)
}

func TestLoadRejectsDuplicateButtons(t *testing.T) {
	path := writeFile(t, "config.yml", `
dialogs:
  broken:
    title: Broken
    buttons:
      - {label: A, id: x, value: 1}
      - {label: B, id: x, value: 2}
`)
	v := viper.New()
	require.NoError(t, Init(v, path))

	_, err := Load(v)
	assert.ErrorIs(t, err, dialog.ErrDuplicateButtonID)
}

func TestReadDescriptor(t *testing.T) {
	path := writeFile(t, "dialog.yml", `
title: Save changes?
message: You have unsaved edits.
options:
  show_close_button: true
buttons:
  - label: Discard
    id: discard
    value: discard
  - label: Save
    id: save
    class: btn-confirm
    value: 1
`)
	d, err := ReadDescriptor(path)
	require.NoError(t, err)

	assert.Equal(t, "Save changes?", d.Title)
	assert.True(t, d.Options.ShowCloseButton)
	require.Len(t, d.Buttons, 2)
	assert.Equal(t, "discard", d.Buttons[0].Value)
	assert.Equal(t, 1, d.Buttons[1].Value)
	assert.Equal(t, "btn-confirm", d.Buttons[1].Class)
}

func TestReadDescriptorErrors(t *testing.T) {
	_, err := ReadDescriptor(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	_, err = ReadDescriptor(writeFile(t, "bad.yml", "title: [unclosed"))
	assert.Error(t, err)

	_, err = ReadDescriptor(writeFile(t, "noid.yml", "title: x\nbuttons:\n  - label: A\n"))
	assert.ErrorIs(t, err, dialog.ErrEmptyButtonID)
}

func TestSaveDialogKeepsOtherSettings(t *testing.T) {
	path := writeFile(t, "config.yml", sampleConfig)

	err := SaveDialog(path, "Wipe", dialog.Descriptor{
		Title:   "Wipe cache?",
		Buttons: []dialog.ButtonSpec{{Label: "Wipe", ID: "wipe", Value: true}},
	})
	require.NoError(t, err)

	v := viper.New()
	require.NoError(t, Init(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 72, cfg.Dialog.Width)
	assert.Equal(t, []string{"deploy", "wipe"}, cfg.DialogNames())
	d, err := cfg.Lookup("wipe")
	require.NoError(t, err)
	assert.Equal(t, "Wipe cache?", d.Title)
}

func TestSaveDialogCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new", "config.yml")

	require.NoError(t, SaveDialog(path, "hello", dialog.Descriptor{
		Title:   "Hello",
		Options: dialog.Options{ShowCloseButton: true},
	}))

	v := viper.New()
	require.NoError(t, Init(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, cfg.DialogNames())
}
