package gitcore

import (
	"fmt"
	"sort"
	"strings"
)

// pathEntry is one (remaining path segments, blob id) pair used while
// grouping a flat index into nested trees.
type pathEntry struct {
	segments []string
	id       Hash
}

// BuildTree converts a flat index into a nested tree-of-trees and returns
// the id of the root Tree, storing every Tree object created along the way.
// An empty index still produces (and stores) an empty Tree.
func BuildTree(gitDir string, idx Index) (Hash, error) {
	entries := make([]pathEntry, 0, len(idx))
	for p, id := range idx {
		entries = append(entries, pathEntry{segments: strings.Split(p, "/"), id: id})
	}
	return buildTreeLevel(gitDir, entries)
}

// buildTreeLevel groups entries by their first remaining path segment and
// recurses into subdirectories, returning the id of the Tree at this level.
// A segment that is both a leaf (file) and has descendants (directory) is a
// malformed-index conflict and is reported rather than silently resolved.
func buildTreeLevel(gitDir string, entries []pathEntry) (Hash, error) {
	type group struct {
		isFile   bool
		fileID   Hash
		children []pathEntry
	}

	groups := make(map[string]*group)
	order := make([]string, 0, len(entries))

	for _, e := range entries {
		head, tail := e.segments[0], e.segments[1:]

		g, ok := groups[head]
		if !ok {
			g = &group{}
			groups[head] = g
			order = append(order, head)
		}

		if len(tail) == 0 {
			if len(g.children) > 0 {
				return "", fmt.Errorf("%w: %q is both a file and a directory", ErrMalformedIndex, head)
			}
			g.isFile = true
			g.fileID = e.id
			continue
		}

		if g.isFile {
			return "", fmt.Errorf("%w: %q is both a file and a directory", ErrMalformedIndex, head)
		}
		g.children = append(g.children, pathEntry{segments: tail, id: e.id})
	}

	sort.Strings(order)

	treeEntries := make([]TreeEntry, 0, len(order))
	for _, name := range order {
		g := groups[name]
		if g.isFile {
			treeEntries = append(treeEntries, TreeEntry{Mode: ModeFile, Name: name, ID: g.fileID})
			continue
		}
		childID, err := buildTreeLevel(gitDir, g.children)
		if err != nil {
			return "", err
		}
		treeEntries = append(treeEntries, TreeEntry{Mode: ModeDir, Name: name, ID: childID})
	}

	return StoreTree(gitDir, treeEntries)
}

// FlattenTree walks the tree identified by treeID and returns a map of
// every blob path (forward-slash, relative to the tree root) to its blob id.
func FlattenTree(gitDir string, treeID Hash) (map[string]Hash, error) {
	result := make(map[string]Hash)
	if err := flattenTreeInto(gitDir, treeID, "", result); err != nil {
		return nil, fmt.Errorf("FlattenTree: %w", err)
	}
	return result, nil
}

func flattenTreeInto(gitDir string, treeID Hash, prefix string, out map[string]Hash) error {
	tree, err := ReadTree(gitDir, treeID)
	if err != nil {
		return err
	}
	for _, e := range tree.Entries {
		full := e.Name
		if prefix != "" {
			full = prefix + "/" + e.Name
		}
		if isDirMode(e.Mode) {
			if err := flattenTreeInto(gitDir, e.ID, full, out); err != nil {
				return err
			}
			continue
		}
		out[full] = e.ID
	}
	return nil
}
