// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package document

import "fmt"

// Range represents LSP-style range between two positions
// Positions are zero-indexed
type Range struct {
	Start, End Pos
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Empty returns true when the range spans no bytes
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Pos represents a zero-indexed position within a document.
// Column is a byte offset within the line.
type Pos struct {
	Line, Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p sorts before other in document order
func (p Pos) Before(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}
