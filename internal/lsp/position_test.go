package lsp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/source"
	lsp "github.com/sourcegraph/go-lsp"
)

func TestLspPositionToDocument(t *testing.T) {
	testCases := []struct {
		name string

		content     string
		lspPos      lsp.Position
		expectedPos document.Pos
		expectedErr error
	}{
		{
			"empty document, valid position",
			``,
			lsp.Position{Character: 0, Line: 0},
			document.Pos{Line: 0, Column: 0},
			nil,
		},
		{
			"ASCII line",
			"foo\nbar baz  \n",
			lsp.Position{Character: 7, Line: 1},
			document.Pos{Line: 1, Column: 7},
			nil,
		},
		{
			"position after unicode char",
			"x = \"🙃\"  \n",
			lsp.Position{Character: 7, Line: 0},
			document.Pos{Line: 0, Column: 9},
			nil,
		},
		{
			"position past end of line",
			"ab\n",
			lsp.Position{Character: 10, Line: 0},
			document.Pos{Line: 0, Column: 2},
			nil,
		},
		{
			"out-of-range negative position",
			``,
			lsp.Position{Line: -42, Character: -3},
			document.Pos{},
			&InvalidLspPosErr{Pos: lsp.Position{Line: -42, Character: -3}},
		},
		{
			"out-of-range positive position",
			"foo\n",
			lsp.Position{Line: 42, Character: 3},
			document.Pos{},
			&InvalidLspPosErr{Pos: lsp.Position{Line: 42, Character: 3}},
		},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d-%s", i, tc.name), func(t *testing.T) {
			lines := source.MakeSourceLines("test.txt", []byte(tc.content))

			pos, err := lspPositionToDocument(lines, tc.lspPos)
			if err != nil {
				if tc.expectedErr == nil {
					t.Fatal(err)
				}
				if err.Error() != tc.expectedErr.Error() {
					t.Fatalf("unexpected error: %s", err)
				}
				return
			}
			if tc.expectedErr != nil {
				t.Fatalf("expected error: %s", tc.expectedErr)
			}

			if diff := cmp.Diff(tc.expectedPos, pos); diff != "" {
				t.Fatalf("position doesn't match: %s", diff)
			}
		})
	}
}

func TestDocumentPosToLSP(t *testing.T) {
	// 𐐀 is two UTF-16 units and four UTF-8 bytes
	lines := source.MakeSourceLines("test.txt", []byte("hello 𐐀a𐐀a world\n"))

	pos := DocumentPosToLSP(lines, document.Pos{Line: 0, Column: 16})
	expected := lsp.Position{Line: 0, Character: 12}
	if diff := cmp.Diff(expected, pos); diff != "" {
		t.Fatalf("position doesn't match: %s", diff)
	}

	// round trip
	docPos, err := lspPositionToDocument(lines, pos)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(document.Pos{Line: 0, Column: 16}, docPos); diff != "" {
		t.Fatalf("position doesn't match: %s", diff)
	}
}

func TestInvalidLspPosErr(t *testing.T) {
	lines := source.MakeSourceLines("test.txt", []byte("foo\n"))

	_, err := lspPositionToDocument(lines, lsp.Position{Line: 5, Character: 1})
	if !errors.Is(err, &InvalidLspPosErr{}) {
		t.Fatalf("expected InvalidLspPosErr, given: %#v", err)
	}
	if err.Error() != "position 5:1 is outside of the document" {
		t.Fatalf("unexpected message: %s", err)
	}
}
