// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestParseLogPath(t *testing.T) {
	path, err := ParseLogPath("/tmp/ws-{{ pid }}.log")
	if err != nil {
		t.Fatal(err)
	}
	expected := fmt.Sprintf("/tmp/ws-%d.log", os.Getpid())
	if path != expected {
		t.Fatalf("expected %q, given %q", expected, path)
	}
}

func TestParseLogPath_home(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skip(err)
	}

	path, err := ParseLogPath("~/ws.log")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(home, "ws.log") {
		t.Fatalf("unexpected path: %q", path)
	}
}

func TestParseLogPath_invalidTemplate(t *testing.T) {
	_, err := ParseLogPath("/tmp/{{ unknown }}.log")
	if err == nil {
		t.Fatal("expected error for unknown function")
	}
}

func TestNewFileLogger(t *testing.T) {
	_, err := NewFileLogger("relative.log")
	if err == nil || !strings.Contains(err.Error(), "absolute") {
		t.Fatalf("expected error for relative path, given %v", err)
	}

	path := filepath.Join(t.TempDir(), "ws.log")
	fl, err := NewFileLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	fl.Logger().Print("hello")
	if err := fl.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "hello") {
		t.Fatalf("expected log line, given %q", b)
	}
}
