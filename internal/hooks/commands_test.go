// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/editor"
)

func TestHandlers_Names(t *testing.T) {
	w := New(testConfig(t, nil))

	expected := []string{
		"whitespace:convert-all-tabs-to-spaces",
		"whitespace:convert-spaces-to-tabs",
		"whitespace:convert-tabs-to-spaces",
		"whitespace:remove-trailing-whitespace",
		"whitespace:save-with-trailing-whitespace",
		"whitespace:save-without-trailing-whitespace",
	}
	if diff := cmp.Diff(expected, w.Commands().Names()); diff != "" {
		t.Fatalf("unexpected names: %s", diff)
	}
}

func TestWhitespace_Run_unknownCommand(t *testing.T) {
	w := New(testConfig(t, nil))
	ed := testEditor("", "text.plain")

	err := w.Run(context.Background(), "whitespace:foo", ed)
	if !errors.Is(err, &UnknownCommandError{}) {
		t.Fatalf("expected unknown command error, given: %v", err)
	}
}

func TestWhitespace_Run_removeTrailingWhitespace(t *testing.T) {
	w := New(testConfig(t, map[string]interface{}{
		"whitespace": map[string]interface{}{
			"ignoreCommentOnlyLines": true,
		},
	}))
	ed := testEditor("a  \n  //  \n b \t\nc", "source.js")
	ed.SetCursors(document.Pos{Line: 3, Column: 1})

	err := w.Run(context.Background(), "whitespace:remove-trailing-whitespace", ed)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a\n  //  \n b\nc", string(ed.Text())); diff != "" {
		t.Fatalf("unexpected text: %s", diff)
	}
}

func TestWhitespace_Run_saveWithTrailingWhitespace(t *testing.T) {
	w := New(testConfig(t, nil))
	ed := testEditor("foo  \nbar", "text.plain")
	ed.SetCursors(document.Pos{Line: 1, Column: 0})
	w.Watch(ed)

	saved := make([]string, 0)
	ed.SetSaver(editor.SaverFunc(func(_ context.Context, _ document.Handle, text []byte) error {
		saved = append(saved, string(text))
		return nil
	}))

	err := w.Run(context.Background(), "save-with-trailing-whitespace", ed)
	if err != nil {
		t.Fatal(err)
	}
	// the suppression only lasts for a single save
	err = ed.Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"foo  \nbar\n",
		"foo\nbar\n",
	}
	if diff := cmp.Diff(expected, saved); diff != "" {
		t.Fatalf("unexpected saved content: %s", diff)
	}
}

func TestWhitespace_SuppressNextSave(t *testing.T) {
	w := New(testConfig(t, nil))
	ed := testEditor("foo  \nbar", "text.plain")
	ed.ClearCursors()
	w.Watch(ed)

	saved := make([]string, 0)
	ed.SetSaver(editor.SaverFunc(func(_ context.Context, _ document.Handle, text []byte) error {
		saved = append(saved, string(text))
		return nil
	}))

	w.SuppressNextSave(ed)

	// the suppression is consumed by the save,
	// even when the content is reset in between
	before := ed.Text()
	err := ed.Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	ed.SetText(before)

	err = ed.Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"foo  \nbar\n",
		"foo\nbar\n",
	}
	if diff := cmp.Diff(expected, saved); diff != "" {
		t.Fatalf("unexpected saved content: %s", diff)
	}
}

func TestIsCommand(t *testing.T) {
	if !IsCommand("whitespace:save-with-trailing-whitespace", SaveWithTrailingWhitespace) {
		t.Fatal("expected prefixed name to match")
	}
	if !IsCommand("save-with-trailing-whitespace", SaveWithTrailingWhitespace) {
		t.Fatal("expected bare name to match")
	}
	if IsCommand("whitespace:save-without-trailing-whitespace", SaveWithTrailingWhitespace) {
		t.Fatal("expected different command not to match")
	}
}

func TestWhitespace_Run_saveWithTrailingWhitespace_saveFails(t *testing.T) {
	w := New(testConfig(t, nil))
	ed := testEditor("foo  \n", "text.plain")
	ed.SetCursors(document.Pos{Line: 1, Column: 0})
	w.Watch(ed)

	failing := true
	ed.SetSaver(editor.SaverFunc(func(context.Context, document.Handle, []byte) error {
		if failing {
			return errors.New("disk full")
		}
		return nil
	}))

	err := w.Run(context.Background(), "save-with-trailing-whitespace", ed)
	if err == nil {
		t.Fatal("expected error")
	}

	failing = false
	err = ed.Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("foo\n", string(ed.Text())); diff != "" {
		t.Fatalf("expected whitespace to be removed: %s", diff)
	}
}

func TestWhitespace_Run_saveWithoutTrailingWhitespace(t *testing.T) {
	w := New(testConfig(t, nil))
	ed := testEditor("foo  \n", "text.plain")
	ed.SetCursors(document.Pos{Line: 0, Column: 5})

	var saved string
	ed.SetSaver(editor.SaverFunc(func(_ context.Context, _ document.Handle, text []byte) error {
		saved = string(text)
		return nil
	}))

	// unwatched editors are normalized by the command too
	err := w.Run(context.Background(), "save-without-trailing-whitespace", ed)
	if err != nil {
		t.Fatal(err)
	}
	// the cursor row is still exempt
	if diff := cmp.Diff("foo  \n", saved); diff != "" {
		t.Fatalf("unexpected saved content: %s", diff)
	}

	ed.SetCursors(document.Pos{Line: 1, Column: 0})
	err = w.Run(context.Background(), "save-without-trailing-whitespace", ed)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("foo\n", saved); diff != "" {
		t.Fatalf("unexpected saved content: %s", diff)
	}
}

func TestWhitespace_Run_convertTabsToSpaces(t *testing.T) {
	w := New(testConfig(t, nil))

	ed := testEditor("\t\tfoo\tbar\n", "text.plain")
	ed.SetTabLength(4)
	ed.SetSoftTabs(false)

	err := w.Run(context.Background(), "convert-tabs-to-spaces", ed)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("        foo\tbar\n", string(ed.Text())); diff != "" {
		t.Fatalf("unexpected text: %s", diff)
	}
	if !ed.SoftTabs() {
		t.Fatal("expected soft tabs")
	}

	err = w.Run(context.Background(), "convert-all-tabs-to-spaces", ed)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("        foo    bar\n", string(ed.Text())); diff != "" {
		t.Fatalf("unexpected text: %s", diff)
	}
}

func TestWhitespace_Run_convertSpacesToTabs(t *testing.T) {
	w := New(testConfig(t, map[string]interface{}{
		"editor": map[string]interface{}{"tabLength": 2},
	}))

	ed := testEditor("    foo\n      \tbar\n  baz  \n", "text.plain")
	ed.SetTabLength(4)

	err := w.Run(context.Background(), "convert-spaces-to-tabs", ed)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("\tfoo\n\t\tbar\n  baz  \n", string(ed.Text())); diff != "" {
		t.Fatalf("unexpected text: %s", diff)
	}
	if ed.SoftTabs() {
		t.Fatal("expected hard tabs")
	}
	if ed.TabLength() != 2 {
		t.Fatalf("expected tab length to be reset to 2, %d given", ed.TabLength())
	}
}
