package lsp

import (
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/source"
	lsp "github.com/sourcegraph/go-lsp"
)

// TextEditsFromDocumentChanges converts changes expressed
// against lines into LSP text edits
func TextEditsFromDocumentChanges(lines source.Lines, changes document.Changes) []lsp.TextEdit {
	edits := make([]lsp.TextEdit, 0, len(changes))

	for _, change := range changes {
		rng := change.Range()
		if rng == nil {
			continue
		}
		edits = append(edits, lsp.TextEdit{
			Range:   DocumentRangeToLSP(lines, *rng),
			NewText: change.Text(),
		})
	}

	return edits
}
