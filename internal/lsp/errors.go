// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lsp

import (
	"fmt"

	lsp "github.com/sourcegraph/go-lsp"
)

// InvalidLspPosErr is returned for a position sent by the client
// which does not point into the document
type InvalidLspPosErr struct {
	Pos lsp.Position
}

func (e *InvalidLspPosErr) Error() string {
	return fmt.Sprintf("position %d:%d is outside of the document",
		e.Pos.Line, e.Pos.Character)
}

func (e *InvalidLspPosErr) Is(err error) bool {
	_, ok := err.(*InvalidLspPosErr)
	return ok
}
