// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/editor"
	"github.com/hashicorp/whitespace-ls/internal/hooks"
	"github.com/hashicorp/whitespace-ls/internal/settings"
	"github.com/mitchellh/cli"
)

type RunCommand struct {
	Ui cli.Ui

	// flags
	configPath string
}

func (c *RunCommand) flags() *flag.FlagSet {
	fs := defaultFlagSet("run")

	fs.StringVar(&c.configPath, "config", "", configFlagUsage)

	fs.Usage = func() { c.Ui.Error(c.Help()) }

	return fs
}

func (c *RunCommand) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing command-line flags: %s", err))
		return 1
	}

	if f.NArg() < 2 {
		c.Ui.Error("Expected a command name and at least one file")
		return 1
	}
	name := f.Arg(0)

	s, err := loadSettings(c.Ui, c.configPath)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to load configuration: %s", err))
		return 1
	}
	store := settings.NewStore(s)

	ws := hooks.New(store)
	defer ws.Destroy()

	if _, ok := ws.Commands().Get(name); !ok {
		c.Ui.Error(fmt.Sprintf("Unknown command %q, available: %s",
			name, strings.Join(ws.Commands().Names(), ", ")))
		return 1
	}

	ctx := context.Background()

	var errs *multierror.Error
	for _, path := range f.Args()[1:] {
		err := c.runOnFile(ctx, ws, store, name, path)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	return 0
}

func (c *RunCommand) runOnFile(ctx context.Context, ws *hooks.Whitespace, store *settings.Store, name, path string) error {
	ed, err := openFile(path, store)
	if err != nil {
		return err
	}
	defer ed.Destroy()

	onDisk := ed.Text()
	ed.SetSaver(editor.SaverFunc(func(ctx context.Context, h document.Handle, text []byte) error {
		err := editor.FileSaver{}.Save(ctx, h, text)
		if err != nil {
			return err
		}
		onDisk = text
		return nil
	}))
	ws.Watch(ed)

	err = ws.Run(ctx, name, ed)
	if err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}

	// commands which don't save leave their result in the editor only
	if !bytes.Equal(onDisk, ed.Text()) {
		err = editor.FileSaver{}.Save(ctx, ed.Handle(), ed.Text())
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *RunCommand) Help() string {
	helpText := `
Usage: whitespace-ls run [options] COMMAND FILE...

` + c.Synopsis() + `

Available commands:

  remove-trailing-whitespace
  save-with-trailing-whitespace
  save-without-trailing-whitespace
  convert-tabs-to-spaces
  convert-spaces-to-tabs
  convert-all-tabs-to-spaces

The "whitespace:" prefix is optional.

` + helpForFlags(c.flags())

	return strings.TrimSpace(helpText)
}

func (c *RunCommand) Synopsis() string {
	return "Runs a whitespace command on given files"
}
