package gitcore

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Object kind tags used in the storage header.
const (
	kindBlob   = "blob"
	kindTree   = "tree"
	kindCommit = "commit"
)

// StoreBlob writes file bytes as a Blob object and returns its id.
func StoreBlob(gitDir string, content []byte) (Hash, error) {
	id, err := storeObject(gitDir, kindBlob, content)
	if err != nil {
		return "", fmt.Errorf("StoreBlob: %w", err)
	}
	return id, nil
}

// ReadBlob retrieves the raw bytes of a Blob by id.
func ReadBlob(gitDir string, id Hash) ([]byte, error) {
	kind, payload, err := readObjectRaw(gitDir, id)
	if err != nil {
		return nil, fmt.Errorf("ReadBlob: %w", err)
	}
	if kind != kindBlob {
		return nil, fmt.Errorf("%w: %s is a %s, not a blob", ErrObjectCorrupt, id, kind)
	}
	return payload, nil
}

// encodeTree sorts entries ascending by name (byte-lexicographic) and
// serializes them as "<mode> <name>\0<20-byte-id>" concatenated in order.
// A name that appears twice (a malformed-index collision surfacing here) is
// reported rather than silently overwritten.
func encodeTree(entries []TreeEntry) ([]byte, error) {
	sorted := make([]TreeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var buf bytes.Buffer
	seen := make(map[string]bool, len(sorted))
	for _, e := range sorted {
		if seen[e.Name] {
			return nil, fmt.Errorf("%w: duplicate tree entry %q", ErrMalformedIndex, e.Name)
		}
		seen[e.Name] = true

		raw, err := hashToRaw(e.ID)
		if err != nil {
			return nil, fmt.Errorf("encodeTree: entry %q: %w", e.Name, err)
		}

		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(raw)
	}
	return buf.Bytes(), nil
}

// StoreTree serializes and stores entries as a Tree object, re-sorting so
// the resulting hash is deterministic regardless of insertion order.
func StoreTree(gitDir string, entries []TreeEntry) (Hash, error) {
	payload, err := encodeTree(entries)
	if err != nil {
		return "", err
	}
	id, err := storeObject(gitDir, kindTree, payload)
	if err != nil {
		return "", fmt.Errorf("StoreTree: %w", err)
	}
	return id, nil
}

// parseTreeBody decodes a Tree payload into entries, in on-disk order.
func parseTreeBody(body []byte) ([]TreeEntry, error) {
	var entries []TreeEntry
	r := bytes.NewReader(body)

	for {
		mode, err := readUntilByte(r, ' ')
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: tree mode: %v", ErrObjectCorrupt, err)
		}

		name, err := readUntilByte(r, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: tree name: %v", ErrObjectCorrupt, err)
		}

		var raw [20]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, fmt.Errorf("%w: tree child id: %v", ErrObjectCorrupt, err)
		}
		id, err := NewHashFromBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrObjectCorrupt, err)
		}

		entries = append(entries, TreeEntry{Mode: mode, Name: name, ID: id})
	}

	return entries, nil
}

// readUntilByte reads bytes up to (not including) delim. Returning io.EOF
// with zero bytes read signals a clean end of the tree payload; any other
// EOF mid-token is a framing error.
func readUntilByte(r *bytes.Reader, delim byte) (string, error) {
	var sb strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() == 0 {
				return "", io.EOF
			}
			return "", fmt.Errorf("unexpected end of tree entry: %w", err)
		}
		if b == delim {
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

// ReadTree retrieves and parses a Tree object by id.
func ReadTree(gitDir string, id Hash) (*Tree, error) {
	kind, payload, err := readObjectRaw(gitDir, id)
	if err != nil {
		return nil, fmt.Errorf("ReadTree: %w", err)
	}
	if kind != kindTree {
		return nil, fmt.Errorf("%w: %s is a %s, not a tree", ErrObjectCorrupt, id, kind)
	}
	entries, err := parseTreeBody(payload)
	if err != nil {
		return nil, fmt.Errorf("ReadTree: %w", err)
	}
	return &Tree{ID: id, Entries: entries}, nil
}

// encodeCommit renders a Commit's payload exactly as spec.md §3 documents:
// tree line, zero or more parent lines, author, committer, a blank line,
// then the message verbatim (including any embedded blank lines).
func encodeCommit(c *Commit) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "tree %s\n", c.Tree)
	for _, p := range c.Parents {
		fmt.Fprintf(&b, "parent %s\n", p)
	}
	fmt.Fprintf(&b, "author %s\n", c.Author.Line())
	fmt.Fprintf(&b, "committer %s\n", c.Committer.Line())
	b.WriteByte('\n')
	b.WriteString(c.Message)
	return []byte(b.String())
}

// StoreCommit serializes and stores c, returning its id.
func StoreCommit(gitDir string, c *Commit) (Hash, error) {
	id, err := storeObject(gitDir, kindCommit, encodeCommit(c))
	if err != nil {
		return "", fmt.Errorf("StoreCommit: %w", err)
	}
	return id, nil
}

// parseCommitBody parses a Commit payload. Unlike readUntilByte, Commit
// framing is line-oriented: the first blank line ends the header and
// everything after it, rejoined with "\n", is the message.
func parseCommitBody(body []byte) (*Commit, error) {
	c := &Commit{}
	lines := strings.Split(string(body), "\n")

	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			i++
			break
		}
		switch {
		case strings.HasPrefix(line, "tree "):
			id, err := NewHash(strings.TrimPrefix(line, "tree "))
			if err != nil {
				return nil, fmt.Errorf("%w: commit tree: %v", ErrObjectCorrupt, err)
			}
			c.Tree = id
		case strings.HasPrefix(line, "parent "):
			id, err := NewHash(strings.TrimPrefix(line, "parent "))
			if err != nil {
				return nil, fmt.Errorf("%w: commit parent: %v", ErrObjectCorrupt, err)
			}
			c.Parents = append(c.Parents, id)
		case strings.HasPrefix(line, "author "):
			sig, err := ParseSignature(strings.TrimPrefix(line, "author "))
			if err != nil {
				return nil, fmt.Errorf("%w: commit author: %v", ErrObjectCorrupt, err)
			}
			c.Author = sig
		case strings.HasPrefix(line, "committer "):
			sig, err := ParseSignature(strings.TrimPrefix(line, "committer "))
			if err != nil {
				return nil, fmt.Errorf("%w: commit committer: %v", ErrObjectCorrupt, err)
			}
			c.Committer = sig
		}
	}
	c.Message = strings.Join(lines[i:], "\n")

	return c, nil
}

// ReadCommit retrieves and parses a Commit object by id.
func ReadCommit(gitDir string, id Hash) (*Commit, error) {
	kind, payload, err := readObjectRaw(gitDir, id)
	if err != nil {
		return nil, fmt.Errorf("ReadCommit: %w", err)
	}
	if kind != kindCommit {
		return nil, fmt.Errorf("%w: %s is a %s, not a commit", ErrObjectCorrupt, id, kind)
	}
	c, err := parseCommitBody(payload)
	if err != nil {
		return nil, fmt.Errorf("ReadCommit: %w", err)
	}
	c.ID = id
	return c, nil
}

func hashToRaw(id Hash) ([]byte, error) {
	raw, err := hex.DecodeString(string(id))
	if err != nil || len(raw) != 20 {
		return nil, fmt.Errorf("invalid object id %q", id)
	}
	return raw, nil
}
