package gitcore

import (
	"crypto/sha1" //nolint:gosec // matching the object-identity algorithm under test
	"fmt"
	"testing"
	"time"
)

func TestStoreBlob_RoundTrip(t *testing.T) {
	gitDir := t.TempDir()

	id, err := StoreBlob(gitDir, []byte("hi\n"))
	if err != nil {
		t.Fatalf("StoreBlob: %v", err)
	}

	want := fmt.Sprintf("%x", sha1.Sum([]byte("blob 3\x00hi\n"))) //nolint:gosec
	if string(id) != want {
		t.Fatalf("id = %s, want %s", id, want)
	}

	got, err := ReadBlob(gitDir, id)
	if err != nil {
		t.Fatalf("ReadBlob: %v", err)
	}
	if string(got) != "hi\n" {
		t.Fatalf("ReadBlob = %q, want %q", got, "hi\n")
	}
}

func TestStoreBlob_Idempotent(t *testing.T) {
	gitDir := t.TempDir()

	id1, err := StoreBlob(gitDir, []byte("same"))
	if err != nil {
		t.Fatalf("StoreBlob: %v", err)
	}
	id2, err := StoreBlob(gitDir, []byte("same"))
	if err != nil {
		t.Fatalf("StoreBlob: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected identical ids, got %s and %s", id1, id2)
	}
}

func TestStoreTree_RoundTrip(t *testing.T) {
	gitDir := t.TempDir()

	blobA, err := StoreBlob(gitDir, []byte("A"))
	if err != nil {
		t.Fatalf("StoreBlob: %v", err)
	}
	blobB, err := StoreBlob(gitDir, []byte("B"))
	if err != nil {
		t.Fatalf("StoreBlob: %v", err)
	}

	entries := []TreeEntry{
		{Mode: ModeFile, Name: "b.txt", ID: blobB},
		{Mode: ModeFile, Name: "a.txt", ID: blobA},
	}
	id, err := StoreTree(gitDir, entries)
	if err != nil {
		t.Fatalf("StoreTree: %v", err)
	}

	tree, err := ReadTree(gitDir, id)
	if err != nil {
		t.Fatalf("ReadTree: %v", err)
	}
	if len(tree.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(tree.Entries))
	}
	if tree.Entries[0].Name != "a.txt" || tree.Entries[1].Name != "b.txt" {
		t.Fatalf("entries not sorted: %v", tree.Entries)
	}
}

func TestEncodeTree_DuplicateNameRejected(t *testing.T) {
	entries := []TreeEntry{
		{Mode: ModeFile, Name: "x", ID: Hash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")},
		{Mode: ModeDir, Name: "x", ID: Hash("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")},
	}
	if _, err := encodeTree(entries); err == nil {
		t.Fatal("expected error for duplicate tree entry name")
	}
}

func TestStoreCommit_RoundTrip(t *testing.T) {
	gitDir := t.TempDir()

	sig := Signature{Name: "Ada Lovelace", Email: "ada@example.com", When: time.Unix(1700000000, 0).UTC()}
	c := &Commit{
		Tree:      Hash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		Parents:   []Hash{"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"},
		Author:    sig,
		Committer: sig,
		Message:   "first line\n\nsecond paragraph with a blank line above",
	}

	id, err := StoreCommit(gitDir, c)
	if err != nil {
		t.Fatalf("StoreCommit: %v", err)
	}

	got, err := ReadCommit(gitDir, id)
	if err != nil {
		t.Fatalf("ReadCommit: %v", err)
	}

	if got.Tree != c.Tree {
		t.Errorf("Tree: got %s, want %s", got.Tree, c.Tree)
	}
	if len(got.Parents) != 1 || got.Parents[0] != c.Parents[0] {
		t.Errorf("Parents: got %v, want %v", got.Parents, c.Parents)
	}
	if got.Author.Name != sig.Name || got.Author.Email != sig.Email {
		t.Errorf("Author: got %+v, want %+v", got.Author, sig)
	}
	if !got.Author.When.Equal(sig.When) {
		t.Errorf("Author.When: got %v, want %v", got.Author.When, sig.When)
	}
	if got.Message != c.Message {
		t.Errorf("Message: got %q, want %q", got.Message, c.Message)
	}
}

func TestObjectRoundTrip_MatchesDirectoryHash(t *testing.T) {
	gitDir := t.TempDir()

	id, err := StoreBlob(gitDir, []byte("some content"))
	if err != nil {
		t.Fatalf("StoreBlob: %v", err)
	}

	kind, payload, err := readObjectRaw(gitDir, id)
	if err != nil {
		t.Fatalf("readObjectRaw: %v", err)
	}
	recomputed, _ := hashObject(kind, payload)
	if recomputed != id {
		t.Fatalf("recomputed hash %s does not match directory-encoded hash %s", recomputed, id)
	}
}
