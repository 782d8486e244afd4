// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package state

import (
	"testing"
)

func TestFileHashStore(t *testing.T) {
	s, err := NewStateStore()
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.FileHashes.Hash("/tmp/foo")
	if !IsRecordNotFound(err) {
		t.Fatalf("expected record not found, given: %v", err)
	}

	changed, err := s.FileHashes.SetHash("/tmp/foo", []byte{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected first hash to be a change")
	}

	changed, err = s.FileHashes.SetHash("/tmp/foo", []byte{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Fatal("expected same hash not to be a change")
	}

	changed, err = s.FileHashes.SetHash("/tmp/foo", []byte{3})
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("expected different hash to be a change")
	}

	err = s.FileHashes.Forget("/tmp/foo")
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.FileHashes.Hash("/tmp/foo")
	if !IsRecordNotFound(err) {
		t.Fatalf("expected record not found, given: %v", err)
	}
}
