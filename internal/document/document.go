// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"time"

	"github.com/hashicorp/whitespace-ls/internal/source"
)

type Document struct {
	Handle Handle

	ModTime time.Time

	// Scope identifies the language of the document (e.g. source.gfm)
	// and is used to resolve scoped settings.
	Scope   string
	Version int

	// Text contains the document body stored as bytes.
	Text []byte

	// Lines contains Text separated into lines to enable byte offset
	// computation for any position-based operations
	// and to aid in calculating diff when normalizing the document.
	Lines source.Lines
}

func (d *Document) Copy() *Document {
	return &Document{
		Handle:  d.Handle,
		ModTime: d.ModTime,
		Scope:   d.Scope,
		Version: d.Version,
		Text:    d.Text,
		Lines:   d.Lines.Copy(),
	}
}
