// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"bytes"
	"sort"

	"github.com/hashicorp/whitespace-ls/internal/source"
)

type Change interface {
	Text() string
	Range() *Range
}

type Changes []Change

// Edit is a Change replacing Rng with NewText.
// An empty NewText signifies deletion.
type Edit struct {
	Rng     Range
	NewText string
}

func (e *Edit) Text() string {
	return e.NewText
}

func (e *Edit) Range() *Range {
	return &e.Rng
}

// ApplyChanges applies changes one after another, each change
// addressing the text produced by the previous one (LSP semantics).
func ApplyChanges(original []byte, changes Changes) ([]byte, error) {
	if len(changes) == 0 {
		return original, nil
	}

	var buf bytes.Buffer
	_, err := buf.Write(original)
	if err != nil {
		return nil, err
	}

	for _, ch := range changes {
		err := applyDocumentChange(&buf, ch)
		if err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// ApplyBatch applies changes which were all computed against original.
//
// Changes must not overlap. They are applied from the bottom
// of the document up, so that positions of not-yet-applied changes
// remain valid.
func ApplyBatch(original []byte, changes Changes) ([]byte, error) {
	if len(changes) == 0 {
		return original, nil
	}

	sorted := make(Changes, len(changes))
	copy(sorted, changes)
	for _, ch := range sorted {
		if ch.Range() == nil {
			// a full content change makes the rest of the batch meaningless
			return ApplyChanges(original, Changes{ch})
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Range().Start.Before(sorted[i].Range().Start)
	})

	for i := 1; i < len(sorted); i++ {
		upper, lower := sorted[i].Range(), sorted[i-1].Range()
		if lower.Start.Before(upper.End) {
			return nil, &OverlappingChangesErr{First: *upper, Second: *lower}
		}
	}

	return ApplyChanges(original, sorted)
}

func applyDocumentChange(buf *bytes.Buffer, change Change) error {
	// if the range is nil, we assume it is full content change
	if change.Range() == nil {
		buf.Reset()
		_, err := buf.WriteString(change.Text())
		return err
	}

	lines := source.MakeSourceLines("", buf.Bytes())

	startByte, err := ByteOffsetForPos(lines, change.Range().Start)
	if err != nil {
		return err
	}
	endByte, err := ByteOffsetForPos(lines, change.Range().End)
	if err != nil {
		return err
	}
	if endByte < startByte {
		return &InvalidPosErr{Pos: change.Range().End}
	}

	beforeChange := make([]byte, startByte)
	copy(beforeChange, buf.Bytes())
	afterBytes := buf.Bytes()[endByte:]
	afterChange := make([]byte, len(afterBytes))
	copy(afterChange, afterBytes)

	buf.Reset()

	_, err = buf.Write(beforeChange)
	if err != nil {
		return err
	}
	_, err = buf.WriteString(change.Text())
	if err != nil {
		return err
	}
	_, err = buf.Write(afterChange)
	if err != nil {
		return err
	}

	return nil
}

// ByteOffsetForPos converts a position into a byte offset
// within the text the lines were made from.
func ByteOffsetForPos(lines source.Lines, pos Pos) (int, error) {
	if pos.Line < 0 || pos.Line >= len(lines) {
		return 0, &InvalidPosErr{Pos: pos}
	}
	line := lines[pos.Line]
	if pos.Column < 0 || pos.Column > len(line.Bytes) {
		return 0, &InvalidPosErr{Pos: pos}
	}

	return line.Range.Start.Byte + pos.Column, nil
}
