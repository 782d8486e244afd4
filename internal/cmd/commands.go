// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/editor"
	"github.com/hashicorp/whitespace-ls/internal/settings"
	"github.com/mitchellh/cli"
)

func defaultFlagSet(cmdName string) *flag.FlagSet {
	f := flag.NewFlagSet(cmdName, flag.ContinueOnError)
	f.SetOutput(io.Discard)

	// Set the default Usage to empty
	f.Usage = func() {}

	return f
}

func helpForFlags(fs *flag.FlagSet) string {
	buf := &strings.Builder{}
	buf.WriteString("Options:\n\n")

	w := fs.Output()
	defer fs.SetOutput(w)
	fs.SetOutput(buf)
	fs.PrintDefaults()

	return buf.String()
}

const pathTemplateUsage = " with support for Go template functions" +
	" {{timestamp}}, {{pid}} and {{ppid}}"

const configFlagUsage = "path to a JSON config file, defaults to " + settings.DefaultConfigPath

// loadSettings reads the config file and reports any
// ignored configuration as warnings
func loadSettings(ui cli.Ui, path string) (*settings.Settings, error) {
	ds, err := settings.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if len(ds.UnusedKeys) > 0 {
		ui.Warn(fmt.Sprintf("Unknown configuration options: %q", ds.UnusedKeys))
	}
	if ds.Warnings != nil {
		ui.Warn(fmt.Sprintf("Some configuration was ignored: %s", ds.Warnings))
	}

	return ds.Settings, nil
}

// openFile loads a file into an editor which behaves as if
// the file was open without any cursor placed in it
func openFile(path string, store *settings.Store) (*editor.Editor, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	scope := settings.ScopeForFilename(filepath.Base(absPath))
	ed := editor.NewEditor(document.HandleFromPath(absPath), b, scope)
	ed.ClearCursors()
	ed.SetTabLength(store.ForScope(scope).Editor.TabLength)

	return ed, nil
}
