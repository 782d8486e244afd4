// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	lsctx "github.com/hashicorp/whitespace-ls/internal/context"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/editor"
	"github.com/hashicorp/whitespace-ls/internal/hooks"
	"github.com/hashicorp/whitespace-ls/internal/logging"
	"github.com/hashicorp/whitespace-ls/internal/settings"
	"github.com/hashicorp/whitespace-ls/internal/state"
	"github.com/hashicorp/whitespace-ls/internal/watcher"
	"github.com/mitchellh/cli"
)

type WatchCommand struct {
	Ui cli.Ui

	// flags
	configPath  string
	logFilePath string
}

func (c *WatchCommand) flags() *flag.FlagSet {
	fs := defaultFlagSet("watch")

	fs.StringVar(&c.configPath, "config", "", configFlagUsage)
	fs.StringVar(&c.logFilePath, "log-file", "", "path to a file to log into"+pathTemplateUsage)

	fs.Usage = func() { c.Ui.Error(c.Help()) }

	return fs
}

func (c *WatchCommand) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing command-line flags: %s", err))
		return 1
	}

	if f.NArg() == 0 {
		c.Ui.Error("Expected at least one file")
		return 1
	}

	var logger *log.Logger
	if c.logFilePath != "" {
		fl, err := logging.NewFileLogger(c.logFilePath)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("Failed to setup file logging: %s", err))
			return 1
		}
		defer fl.Close()

		logger = fl.Logger()
	} else {
		logger = logging.NewLogger(os.Stderr)
	}

	s, err := loadSettings(c.Ui, c.configPath)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to load configuration: %s", err))
		return 1
	}
	store := settings.NewStore(s)

	ws := hooks.New(store)
	ws.SetLogger(logger)
	defer ws.Destroy()

	ss, err := state.NewStateStore()
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to create state: %s", err))
		return 1
	}
	ss.SetLogger(logger)

	w, err := watcher.NewWatcher(ss.FileHashes)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to create watcher: %s", err))
		return 1
	}
	w.SetLogger(logger)

	err = w.AddPaths(f.Args())
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to watch files: %s", err))
		return 1
	}

	w.AddChangeHook(func(ctx context.Context, file watcher.TrackedFile) error {
		return fixTrackedFile(ctx, ws, store, file)
	})

	ctx, cancelFunc := lsctx.WithSignalCancel(context.Background(), logger,
		syscall.SIGINT, syscall.SIGTERM)
	defer cancelFunc()

	err = w.Start(ctx)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Failed to start watcher: %s", err))
		return 1
	}
	defer w.Stop()

	c.Ui.Info(fmt.Sprintf("Watching %d file(s) for changes", f.NArg()))
	<-ctx.Done()

	return 0
}

func fixTrackedFile(ctx context.Context, ws *hooks.Whitespace, store *settings.Store, file watcher.TrackedFile) error {
	ed, err := openFile(file.Path(), store)
	if err != nil {
		return err
	}
	defer ed.Destroy()

	before := ed.Text()
	ed.SetSaver(editor.SaverFunc(func(ctx context.Context, h document.Handle, text []byte) error {
		if bytes.Equal(before, text) {
			return nil
		}
		return editor.FileSaver{}.Save(ctx, h, text)
	}))
	ws.Watch(ed)

	return ed.Save(ctx)
}

func (c *WatchCommand) Help() string {
	helpText := `
Usage: whitespace-ls watch [options] FILE...

` + c.Synopsis() + `

Every time a file is written the whitespace is normalized
the same way as when the file is saved in an editor.

` + helpForFlags(c.flags())

	return strings.TrimSpace(helpText)
}

func (c *WatchCommand) Synopsis() string {
	return "Normalizes whitespace of files whenever they change"
}
