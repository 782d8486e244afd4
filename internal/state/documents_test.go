package state

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/whitespace-ls/internal/document"
	"github.com/hashicorp/whitespace-ls/internal/source"
)

func TestDocumentStore_UpdateDocument_notFound(t *testing.T) {
	s, err := NewStateStore()
	if err != nil {
		t.Fatal(err)
	}

	testHandle := document.HandleFromURI("file:///not/found.txt")
	err = s.DocumentStore.UpdateDocument(testHandle, []byte{}, 2)
	expectedErr := &document.DocumentNotFound{URI: testHandle.URI}
	if err == nil {
		t.Fatalf("Expected error: %s", expectedErr)
	}
	if err.Error() != expectedErr.Error() {
		t.Fatalf("Unexpected error.\nexpected: %#v\ngiven: %#v",
			expectedErr, err)
	}
}

func TestDocumentStore_CloseDocument_notFound(t *testing.T) {
	s, err := NewStateStore()
	if err != nil {
		t.Fatal(err)
	}

	testHandle := document.HandleFromURI("file:///not/found.txt")
	err = s.DocumentStore.CloseDocument(testHandle)
	if !errors.Is(err, &document.DocumentNotFound{}) {
		t.Fatalf("expected document not found, given: %v", err)
	}
}

func TestDocumentStore_OpenDocument_alreadyExists(t *testing.T) {
	s, err := NewStateStore()
	if err != nil {
		t.Fatal(err)
	}

	testHandle := document.HandleFromURI("file:///dir/test.md")
	err = s.DocumentStore.OpenDocument(testHandle, "source.gfm", 0, []byte("foo"))
	if err != nil {
		t.Fatal(err)
	}

	err = s.DocumentStore.OpenDocument(testHandle, "source.gfm", 0, []byte("foo"))
	if !errors.Is(err, &AlreadyExistsError{}) {
		t.Fatalf("expected already exists error, given: %v", err)
	}
}

func TestDocumentStore_UpdateDocument_basic(t *testing.T) {
	s, err := NewStateStore()
	if err != nil {
		t.Fatal(err)
	}
	s.DocumentStore.TimeProvider = testTimeProvider

	testHandle := document.HandleFromURI("file:///dir/test.md")
	err = s.DocumentStore.OpenDocument(testHandle, "source.gfm", 0, []byte("foo"))
	if err != nil {
		t.Fatal(err)
	}

	err = s.DocumentStore.UpdateDocument(testHandle, []byte("foo  \nbar"), 1)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := s.DocumentStore.GetDocument(testHandle)
	if err != nil {
		t.Fatal(err)
	}

	text := []byte("foo  \nbar")
	expectedDocument := &document.Document{
		Handle:  testHandle,
		ModTime: testTimeProvider(),
		Scope:   "source.gfm",
		Version: 1,
		Text:    text,
		Lines:   source.MakeSourceLines("test.md", text),
	}
	if diff := cmp.Diff(expectedDocument, doc); diff != "" {
		t.Fatalf("document doesn't match: %s", diff)
	}
}

func TestDocumentStore_ListDocuments(t *testing.T) {
	s, err := NewStateStore()
	if err != nil {
		t.Fatal(err)
	}
	s.DocumentStore.TimeProvider = testTimeProvider

	handles := []document.Handle{
		document.HandleFromURI("file:///dir/b.go"),
		document.HandleFromURI("file:///dir/a.md"),
		document.HandleFromURI("file:///dir/c.md"),
	}
	scopes := []string{"source.go", "source.gfm", "source.gfm"}
	for i, h := range handles {
		err = s.DocumentStore.OpenDocument(h, scopes[i], 0, []byte("x"))
		if err != nil {
			t.Fatal(err)
		}
	}

	docs, err := s.DocumentStore.ListDocuments()
	if err != nil {
		t.Fatal(err)
	}
	expectedURIs := []string{
		"file:///dir/a.md",
		"file:///dir/b.go",
		"file:///dir/c.md",
	}
	if diff := cmp.Diff(expectedURIs, documentURIs(docs)); diff != "" {
		t.Fatalf("unexpected documents: %s", diff)
	}

	docs, err = s.DocumentStore.ListDocumentsByScope("source.gfm")
	if err != nil {
		t.Fatal(err)
	}
	expectedURIs = []string{
		"file:///dir/a.md",
		"file:///dir/c.md",
	}
	if diff := cmp.Diff(expectedURIs, documentURIs(docs)); diff != "" {
		t.Fatalf("unexpected documents: %s", diff)
	}

	err = s.DocumentStore.CloseDocument(handles[1])
	if err != nil {
		t.Fatal(err)
	}
	isOpen, err := s.DocumentStore.IsDocumentOpen(handles[1])
	if err != nil {
		t.Fatal(err)
	}
	if isOpen {
		t.Fatal("expected document to be closed")
	}
}

func documentURIs(docs []*document.Document) []string {
	uris := make([]string, len(docs))
	for i, doc := range docs {
		uris[i] = doc.Handle.URI
	}
	return uris
}

func testTimeProvider() time.Time {
	return time.Date(2017, 1, 16, 0, 0, 0, 0, time.UTC)
}
