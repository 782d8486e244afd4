// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package whitespace

import "strings"

// DefaultCommentMarkers are the characters a line may consist of
// (besides spaces and tabs) to be treated as comment-only
const DefaultCommentMarkers = "#*/"

// TrailingWhitespace finds the maximal run of spaces and tabs
// at the end of line, ignoring a final "\r".
//
// start is the column of the first whitespace character of the run
// and end the column right after it. ok is false when there is no run.
func TrailingWhitespace(line string) (start, end int, ok bool) {
	end = len(line)
	if end > 0 && line[end-1] == '\r' {
		end--
	}

	start = end
	for start > 0 && isBlank(line[start-1]) {
		start--
	}

	if start == end {
		return 0, 0, false
	}
	return start, end, true
}

// IsWhitespaceOnly returns true if line is empty or consists
// of spaces and tabs only
func IsWhitespaceOnly(line string) bool {
	start, _, ok := TrailingWhitespace(line)
	if !ok {
		return strings.TrimSuffix(line, "\r") == ""
	}
	return start == 0
}

// IsCommentOnlyLine returns true if line looks like a bare comment
// delimiter, i.e. after trimming spaces and tabs it is non-empty and
// consists solely of marker characters, possibly interspersed with
// spaces and tabs.
//
// This is a syntactic heuristic which knows nothing about the language
// of the document. Empty markers default to DefaultCommentMarkers.
func IsCommentOnlyLine(line, markers string) bool {
	if markers == "" {
		markers = DefaultCommentMarkers
	}

	content := strings.Trim(strings.TrimSuffix(line, "\r"), " \t")
	if content == "" {
		return false
	}

	for _, r := range content {
		if r == ' ' || r == '\t' {
			continue
		}
		if !strings.ContainsRune(markers, r) {
			return false
		}
	}
	return true
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}
