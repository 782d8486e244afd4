// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package whitespace

// Buffer provides read access to the rows of a document.
//
// LineAt returns the row without its trailing "\n". A "\r" of a CRLF
// line ending is part of the returned text.
type Buffer interface {
	LineCount() int
	LineAt(row int) string
}

// RowSet is a set of row numbers, typically rows containing a cursor
type RowSet map[int]struct{}

func NewRowSet(rows ...int) RowSet {
	s := make(RowSet, len(rows))
	for _, row := range rows {
		s[row] = struct{}{}
	}
	return s
}

func (s RowSet) Has(row int) bool {
	_, ok := s[row]
	return ok
}
