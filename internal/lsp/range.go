package lsp

import (
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/source"
	lsp "github.com/sourcegraph/go-lsp"
)

func DocumentRangeToLSP(lines source.Lines, rng document.Range) lsp.Range {
	return lsp.Range{
		Start: DocumentPosToLSP(lines, rng.Start),
		End:   DocumentPosToLSP(lines, rng.End),
	}
}

func lspRangeToDocument(lines source.Lines, lspRng lsp.Range) (*document.Range, error) {
	startPos, err := lspPositionToDocument(lines, lspRng.Start)
	if err != nil {
		return nil, err
	}

	endPos, err := lspPositionToDocument(lines, lspRng.End)
	if err != nil {
		return nil, err
	}

	return &document.Range{
		Start: startPos,
		End:   endPos,
	}, nil
}
