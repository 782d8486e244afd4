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
	"github.com/hashicorp/whitespace-ls/internal/diff"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/editor"
	"github.com/hashicorp/whitespace-ls/internal/hooks"
	"github.com/hashicorp/whitespace-ls/internal/settings"
	"github.com/mitchellh/cli"
)

type FixCommand struct {
	Ui cli.Ui

	// flags
	configPath string
	check      bool
	showDiff   bool
}

func (c *FixCommand) flags() *flag.FlagSet {
	fs := defaultFlagSet("fix")

	fs.StringVar(&c.configPath, "config", "", configFlagUsage)
	fs.BoolVar(&c.check, "check", false, "report files which would change without writing them")
	fs.BoolVar(&c.showDiff, "diff", false, "print a unified diff of every change")

	fs.Usage = func() { c.Ui.Error(c.Help()) }

	return fs
}

func (c *FixCommand) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing command-line flags: %s", err))
		return 1
	}

	if f.NArg() == 0 {
		c.Ui.Error("Expected at least one file")
		return 1
	}

	s, err := loadSettings(c.Ui, c.configPath)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to load configuration: %s", err))
		return 1
	}
	store := settings.NewStore(s)

	ws := hooks.New(store)
	defer ws.Destroy()

	ctx := context.Background()

	var errs *multierror.Error
	changedFiles := 0
	for _, path := range f.Args() {
		changed, err := c.fixFile(ctx, ws, store, path)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if changed {
			changedFiles++
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	if c.check && changedFiles > 0 {
		return 2
	}

	return 0
}

func (c *FixCommand) fixFile(ctx context.Context, ws *hooks.Whitespace, store *settings.Store, path string) (bool, error) {
	ed, err := openFile(path, store)
	if err != nil {
		return false, err
	}
	defer ed.Destroy()

	before := ed.Text()

	ed.SetSaver(editor.SaverFunc(func(ctx context.Context, h document.Handle, text []byte) error {
		if c.check || bytes.Equal(before, text) {
			return nil
		}
		return editor.FileSaver{}.Save(ctx, h, text)
	}))
	ws.Watch(ed)

	err = ed.Save(ctx)
	if err != nil {
		return false, err
	}

	after := ed.Text()
	if bytes.Equal(before, after) {
		return false, nil
	}

	if c.check {
		c.Ui.Output(fmt.Sprintf("%s needs fixing", path))
	} else {
		c.Ui.Info(fmt.Sprintf("fixed %s", path))
	}

	if c.showDiff {
		ud, err := diff.Unified(path, before, after)
		if err != nil {
			return true, err
		}
		c.Ui.Output(strings.TrimRight(ud, "\n"))
	}

	return true, nil
}

func (c *FixCommand) Help() string {
	helpText := `
Usage: whitespace-ls fix [options] FILE...

` + c.Synopsis() + `

Removes trailing whitespace and ensures a single trailing newline
the same way as when a file is saved in an editor.
With -check the exit code is 2 if any file would change.

` + helpForFlags(c.flags())

	return strings.TrimSpace(helpText)
}

func (c *FixCommand) Synopsis() string {
	return "Normalizes whitespace of given files"
}
