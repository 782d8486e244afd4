// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package whitespace implements whitespace normalization of text buffers:
// removal of trailing whitespace, enforcement of a single trailing newline
// and conversion between tab and space indentation.
//
// Every function here is pure. It reads a Buffer snapshot and returns
// document.Changes expressed against that snapshot, which the caller
// applies as one batch (see document.ApplyBatch).
package whitespace
