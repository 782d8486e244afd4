// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package whitespace

import (
	"fmt"
	"testing"
)

func TestTrailingWhitespace(t *testing.T) {
	testCases := []struct {
		line          string
		expectedStart int
		expectedEnd   int
		expectedOk    bool
	}{
		{"", 0, 0, false},
		{"foo", 0, 0, false},
		{"foo   ", 3, 6, true},
		{"a  \t ", 1, 5, true},
		{"   ", 0, 3, true},
		{"\t", 0, 1, true},
		{"foo \r", 3, 4, true},
		{"foo\r", 0, 0, false},
		{"\r", 0, 0, false},
		{"  foo", 0, 0, false},
		{"foo\u00a0", 0, 0, false},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d-%q", i, tc.line), func(t *testing.T) {
			start, end, ok := TrailingWhitespace(tc.line)
			if ok != tc.expectedOk {
				t.Fatalf("expected ok: %t, given: %t", tc.expectedOk, ok)
			}
			if start != tc.expectedStart || end != tc.expectedEnd {
				t.Fatalf("expected [%d, %d), given [%d, %d)",
					tc.expectedStart, tc.expectedEnd, start, end)
			}
		})
	}
}

func TestIsWhitespaceOnly(t *testing.T) {
	testCases := map[string]bool{
		"":       true,
		"   ":    true,
		"\t \t":  true,
		" \r":    true,
		"\r":     true,
		" x ":    false,
		"x":      false,
		"  # ":   false,
		"foo  ":  false,
		"\t\tfo": false,
	}

	for line, expected := range testCases {
		if given := IsWhitespaceOnly(line); given != expected {
			t.Errorf("%q: expected %t, given %t", line, expected, given)
		}
	}
}

func TestIsCommentOnlyLine(t *testing.T) {
	testCases := []struct {
		line     string
		markers  string
		expected bool
	}{
		{"", "", false},
		{"   ", "", false},
		{"#", "", true},
		{"  # ", "", true},
		{"\t//\t", "", true},
		{" * ", "", true},
		{"/**", "", true},
		{"# * #", "", true},
		{"# foo", "", false},
		{"x = 1 //", "", false},
		{"-- ", "", false},
		{"-- ", "-", true},
		{";; ", ";", true},
		{"# \r", "", true},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d-%q", i, tc.line), func(t *testing.T) {
			given := IsCommentOnlyLine(tc.line, tc.markers)
			if given != tc.expected {
				t.Fatalf("expected %t, given %t", tc.expected, given)
			}
		})
	}
}
