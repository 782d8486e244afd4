// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"path"

	"github.com/hashicorp/whitespace-ls/internal/uri"
)

// Handle represents a document location
//
// This may be received via LSP from the client (as URI)
// or constructed from a file path on OS FS.
type Handle struct {
	URI string
}

// HandleFromURI creates a Handle from a given URI.
//
// It is outside the scope of the function to verify
// whether the file exists.
func HandleFromURI(docUri string) Handle {
	return Handle{URI: uri.Normalize(docUri)}
}

// HandleFromPath creates a Handle from a given OS path.
func HandleFromPath(docPath string) Handle {
	return Handle{URI: uri.FromPath(docPath)}
}

func (h Handle) Filename() string {
	return path.Base(h.URI)
}

// FullPath returns the OS path of the document, or an empty string
// if the URI is not a file URI.
func (h Handle) FullPath() string {
	p, err := uri.PathFromURI(h.URI)
	if err != nil {
		return ""
	}
	return p
}

func (h Handle) String() string {
	return h.URI
}
