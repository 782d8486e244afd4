// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package editor

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/whitespace-ls/internal/document"
)

// Saver persists content of a document
type Saver interface {
	Save(ctx context.Context, h document.Handle, text []byte) error
}

type SaverFunc func(ctx context.Context, h document.Handle, text []byte) error

func (f SaverFunc) Save(ctx context.Context, h document.Handle, text []byte) error {
	return f(ctx, h, text)
}

// NopSaver keeps the content in memory only
type NopSaver struct{}

func (NopSaver) Save(context.Context, document.Handle, []byte) error {
	return nil
}

// FileSaver writes the content to the document's path,
// keeping the file mode of an existing file
type FileSaver struct{}

func (FileSaver) Save(ctx context.Context, h document.Handle, text []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := h.FullPath()
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	err := os.WriteFile(path, text, mode)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
