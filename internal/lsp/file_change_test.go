package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/source"
	lsp "github.com/sourcegraph/go-lsp"
)

func TestApplyContentChanges(t *testing.T) {
	testData := []struct {
		Name     string
		Content  string
		Events   []lsp.TextDocumentContentChangeEvent
		Expected string
	}{
		{
			Name:    "full content",
			Content: "hello",
			Events: []lsp.TextDocumentContentChangeEvent{
				{Text: "bye\n"},
			},
			Expected: "bye\n",
		},
		{
			Name:    "sequential incremental changes",
			Content: "hello world\n",
			Events: []lsp.TextDocumentContentChangeEvent{
				{
					Range: &lsp.Range{
						Start: lsp.Position{Line: 0, Character: 11},
						End:   lsp.Position{Line: 0, Character: 11},
					},
					Text: "  \nnext",
				},
				{
					// refers to the text after the first change
					Range: &lsp.Range{
						Start: lsp.Position{Line: 1, Character: 0},
						End:   lsp.Position{Line: 1, Character: 4},
					},
					Text: "last",
				},
			},
			Expected: "hello world  \nlast\n",
		},
		{
			Name:    "non-ASCII",
			Content: "hello 𐐀a𐐀a world",
			Events: []lsp.TextDocumentContentChangeEvent{
				{
					// the range part of "a𐐀a"
					Range: &lsp.Range{
						Start: lsp.Position{Line: 0, Character: 8},
						End:   lsp.Position{Line: 0, Character: 12},
					},
					Text: "b",
				},
			},
			Expected: "hello 𐐀b world",
		},
	}

	for _, v := range testData {
		t.Run(v.Name, func(t *testing.T) {
			result, err := ApplyContentChanges("test.txt", []byte(v.Content), v.Events)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(v.Expected, string(result)); diff != "" {
				t.Fatalf("unexpected text: %s", diff)
			}
		})
	}
}

func TestApplyContentChanges_invalidRange(t *testing.T) {
	_, err := ApplyContentChanges("test.txt", []byte("foo"), []lsp.TextDocumentContentChangeEvent{
		{
			Range: &lsp.Range{
				Start: lsp.Position{Line: 3, Character: 0},
				End:   lsp.Position{Line: 3, Character: 0},
			},
			Text: "x",
		},
	})
	if err == nil {
		t.Fatal("expected error for invalid range")
	}
}

func TestTextEditsFromDocumentChanges(t *testing.T) {
	lines := source.MakeSourceLines("test.txt", []byte("🙃 foo  \n"))

	edits := TextEditsFromDocumentChanges(lines, document.Changes{
		&document.Edit{
			Rng: document.Range{
				Start: document.Pos{Line: 0, Column: 8},
				End:   document.Pos{Line: 0, Column: 10},
			},
		},
	})

	expected := []lsp.TextEdit{
		{
			Range: lsp.Range{
				Start: lsp.Position{Line: 0, Character: 6},
				End:   lsp.Position{Line: 0, Character: 8},
			},
		},
	}
	if diff := cmp.Diff(expected, edits); diff != "" {
		t.Fatalf("unexpected edits: %s", diff)
	}
}
