// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package uri

import (
	"runtime"
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := map[string]string{
		"file:///C%3A/path/to/file.md": "file:///C:/path/to/file.md",
		"file:///path/to/dir/":         "file:///path/to/dir",
		"untitled:Untitled-1":          "untitled:Untitled-1",
	}

	for raw, expected := range testCases {
		if given := Normalize(raw); given != expected {
			t.Errorf("%q: expected %q, given %q", raw, expected, given)
		}
	}
}

func TestIsURIValid(t *testing.T) {
	if IsURIValid("https://example.com/file.md") {
		t.Fatal("expected non-file URI to be invalid")
	}
	if !IsURIValid("file:///tmp/file.md") {
		t.Fatal("expected file URI to be valid")
	}
}

func TestFromPath_roundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths only")
	}

	path := "/tmp/with space/file.md"
	u := FromPath(path)
	if u != "file:///tmp/with%20space/file.md" {
		t.Fatalf("unexpected URI: %q", u)
	}

	given, err := PathFromURI(u)
	if err != nil {
		t.Fatal(err)
	}
	if given != path {
		t.Fatalf("expected %q, given %q", path, given)
	}
}
