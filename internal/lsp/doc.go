// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

/*
Package lsp converts between LSP protocol types and the document
model used by the editor and whitespace packages.

Incoming positions count UTF-16 code units per the protocol and are
turned into byte columns here, so that nothing outside of this package
has to deal with the protocol encoding. Outgoing edits are converted
back the same way.
*/
package lsp
