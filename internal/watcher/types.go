// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package watcher

import (
	"context"
	"log"
)

type TrackedFile interface {
	Path() string
	Sha256Sum() []byte
}

type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
	SetLogger(logger *log.Logger)
	AddPath(path string) error
	AddPaths(paths []string) error
	AddChangeHook(f ChangeHook)
}

// ChangeHook is called for a file whose content has changed.
// The hook may rewrite the file, such a write does not
// trigger hooks again.
type ChangeHook func(ctx context.Context, file TrackedFile) error
