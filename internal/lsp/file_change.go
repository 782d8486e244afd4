package lsp

import (
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/source"
	lsp "github.com/sourcegraph/go-lsp"
)

type contentChange struct {
	text string
	rng  *document.Range
}

func (fc *contentChange) Text() string {
	return fc.text
}

func (fc *contentChange) Range() *document.Range {
	return fc.rng
}

// ContentChange converts a change event whose range refers to lines
func ContentChange(lines source.Lines, chEvent lsp.TextDocumentContentChangeEvent) (document.Change, error) {
	if chEvent.Range == nil {
		return &contentChange{text: chEvent.Text}, nil
	}

	rng, err := lspRangeToDocument(lines, *chEvent.Range)
	if err != nil {
		return nil, err
	}
	return &contentChange{
		text: chEvent.Text,
		rng:  rng,
	}, nil
}

// ApplyContentChanges applies change events in order.
//
// Each event addresses the text resulting from the previous one,
// so UTF-16 columns are resolved against the updated text every time.
func ApplyContentChanges(filename string, text []byte, events []lsp.TextDocumentContentChangeEvent) ([]byte, error) {
	for _, event := range events {
		lines := source.MakeSourceLines(filename, text)
		ch, err := ContentChange(lines, event)
		if err != nil {
			return nil, err
		}

		text, err = document.ApplyChanges(text, document.Changes{ch})
		if err != nil {
			return nil, err
		}
	}
	return text, nil
}
