package lsp

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/apparentlymart/go-textseg/v13/textseg"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/source"
	lsp "github.com/sourcegraph/go-lsp"
)

// byteForLSPColumn takes an lsp.Position.Character value for the receiving line
// and finds the byte offset (relative to the start of the line) of the start
// of the UTF-8 sequence that represents it.
//
// Note that this can't produce an exact result; if the column index
// refers to the second unit of a UTF-16 surrogate pair then it is rounded
// down the first unit because UTF-8 sequences are not divisible in the same
// way.
func byteForLSPColumn(l source.Line, lspCol int) int {
	content := []byte(l.Content())
	if lspCol <= 0 {
		return 0
	}

	// Easy path: if the entire line is ASCII then column counts are equivalent
	if isAllASCII(content) {
		if lspCol > len(content) {
			return len(content)
		}
		return lspCol
	}

	// If there are non-ASCII characters then we need to edge carefully
	// along the line while counting UTF-16 code units in our UTF-8 buffer,
	// since LSP columns are a count of UTF-16 units.
	byteCt := 0
	utf16Ct := 0
	remain := content
	for {
		if len(remain) == 0 { // ran out of characters on the line
			return byteCt
		}
		if utf16Ct >= lspCol { // we've found it
			return byteCt
		}

		adv, chBytes, _ := textseg.ScanUTF8Sequences(remain, true)
		remain = remain[adv:]
		byteCt += adv
		utf16Ct += utf16Len(chBytes)
	}
}

// lspColumnForByte is the inverse of byteForLSPColumn
func lspColumnForByte(l source.Line, byteCol int) int {
	content := []byte(l.Content())
	if byteCol > len(content) {
		byteCol = len(content)
	}
	if byteCol <= 0 {
		return 0
	}
	if isAllASCII(content) {
		return byteCol
	}

	utf16Ct := 0
	remain := content[:byteCol]
	for len(remain) > 0 {
		adv, chBytes, _ := textseg.ScanUTF8Sequences(remain, true)
		remain = remain[adv:]
		utf16Ct += utf16Len(chBytes)
	}
	return utf16Ct
}

func utf16Len(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, l := utf8.DecodeRune(b)
		b = b[l:]
		c1, c2 := utf16.EncodeRune(r)
		if c1 == 0xfffd && c2 == 0xfffd {
			n++ // codepoint fits in one 16-bit unit
		} else {
			n += 2 // codepoint requires a surrogate pair
		}
	}
	return n
}

func isAllASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func lspPositionToDocument(lines source.Lines, pos lsp.Position) (document.Pos, error) {
	if pos.Line < 0 || pos.Line >= len(lines) || pos.Character < 0 {
		return document.Pos{}, &InvalidLspPosErr{pos}
	}

	return document.Pos{
		Line:   pos.Line,
		Column: byteForLSPColumn(lines[pos.Line], pos.Character),
	}, nil
}

// DocumentPosToLSP converts a position with a byte column
// into an LSP position counting UTF-16 units
func DocumentPosToLSP(lines source.Lines, pos document.Pos) lsp.Position {
	if pos.Line < 0 || pos.Line >= len(lines) {
		return lsp.Position{Line: pos.Line, Character: pos.Column}
	}
	return lsp.Position{
		Line:      pos.Line,
		Character: lspColumnForByte(lines[pos.Line], pos.Column),
	}
}
