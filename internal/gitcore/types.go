// Package gitcore implements a minimal, local-only version-control engine
// modeled on the Git object model: a content-addressed object store, a flat
// staging index, tree-structured snapshots, and branch-pointer history.
package gitcore

import (
	"encoding/hex"
	"fmt"
)

// Hash is a 40-character hex-encoded SHA-1 object identifier.
type Hash string

// NewHash validates and wraps a 40-character hex string as a Hash.
func NewHash(s string) (Hash, error) {
	if len(s) != 40 {
		return "", fmt.Errorf("invalid hash length: %d", len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("invalid hash: %w", err)
	}
	return Hash(s), nil
}

// NewHashFromBytes hex-encodes a 20-byte raw SHA-1 digest as a Hash.
func NewHashFromBytes(b [20]byte) (Hash, error) {
	return NewHash(hex.EncodeToString(b[:]))
}

// Short returns the first 7 characters of the hash, or the full hash if shorter.
func (h Hash) Short() string {
	if len(h) < 7 {
		return string(h)
	}
	return string(h)[:7]
}

// TreeEntry is one (mode, name, child-id) tuple within a Tree.
type TreeEntry struct {
	Mode string
	Name string
	ID   Hash
}

// Recognized tree entry modes. ModeDir is emitted without a leading zero;
// readers accept both "40000" and "040000" (see isDirMode).
const (
	ModeFile = "100644"
	ModeDir  = "40000"
)

func isDirMode(mode string) bool {
	return mode == "40000" || mode == "040000"
}

// Tree is an ordered directory listing, sorted ascending by entry name under
// byte-lexicographic order; sorting is the sole source of hash determinism
// for trees.
type Tree struct {
	ID      Hash
	Entries []TreeEntry
}

// Commit is a snapshot tying a root tree to metadata and parents. Parents
// are listed in order; the first parent is the conventional "previous" on
// a branch.
type Commit struct {
	ID        Hash
	Tree      Hash
	Parents   []Hash
	Author    Signature
	Committer Signature
	Message   string
}
