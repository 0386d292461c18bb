package gitcore

import (
	"fmt"
	"os"
	"path/filepath"
)

// StatusReport categorizes every path of interest into the four buckets
// spec.md §4 defines. Paths within each bucket are not sorted; callers that
// want stable output should sort before printing.
type StatusReport struct {
	ToBeCommitted []string // staged and differs from (or absent from) HEAD's tree
	NotStaged     []string // working copy differs from the staged hash, or from HEAD's tree when not staged
	Untracked     []string // present in the working tree only
	Deleted       []string // staged but missing on disk
}

// Status computes the three path→hash mappings spec.md §4.H names — index,
// head-tree-index, working — and derives the four status categories from
// them. Deleted reflects index entries with no matching working file only;
// a path that is in HEAD's tree but neither staged nor present on disk is
// not reported in any category.
func (r *Repository) Status() (*StatusReport, error) {
	index := LoadIndex(r.gitDir)

	headTree, err := r.headTreeIndex()
	if err != nil {
		return nil, fmt.Errorf("Status: %w", err)
	}

	working, err := r.hashWorkingFiles()
	if err != nil {
		return nil, fmt.Errorf("Status: %w", err)
	}

	report := &StatusReport{}

	for path, hash := range index {
		if headHash, ok := headTree[path]; !ok || headHash != hash {
			report.ToBeCommitted = append(report.ToBeCommitted, path)
		}
	}

	for path, hash := range working {
		if indexHash, ok := index[path]; ok {
			if indexHash != hash {
				report.NotStaged = append(report.NotStaged, path)
			}
			continue
		}
		if headHash, ok := headTree[path]; ok {
			if headHash != hash {
				report.NotStaged = append(report.NotStaged, path)
			}
			continue
		}
		report.Untracked = append(report.Untracked, path)
	}

	for path := range index {
		if _, ok := working[path]; !ok {
			report.Deleted = append(report.Deleted, path)
		}
	}

	return report, nil
}

// headTreeIndex flattens the current branch's commit's tree into a
// path→blob-hash map, or returns an empty map when there is no commit yet.
func (r *Repository) headTreeIndex() (map[string]Hash, error) {
	branch, err := CurrentBranch(r.gitDir)
	if err != nil {
		return nil, err
	}
	commit, err := BranchCommit(r.gitDir, branch)
	if err != nil {
		return nil, err
	}
	if commit == "" {
		return map[string]Hash{}, nil
	}
	c, err := ReadCommit(r.gitDir, commit)
	if err != nil {
		return nil, err
	}
	return FlattenTree(r.gitDir, c.Tree)
}

// hashWorkingFiles computes the blob hash each tracked-eligible file in the
// working directory would have if added, without storing any objects.
func (r *Repository) hashWorkingFiles() (map[string]Hash, error) {
	paths, err := EnumerateWorkingFiles(r.workDir)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Hash, len(paths))
	for _, rel := range paths {
		full := filepath.Join(r.workDir, filepath.FromSlash(rel))
		content, err := os.ReadFile(full) //nolint:gosec // G304: path enumerated from the working directory itself
		if err != nil {
			return nil, fmt.Errorf("hashWorkingFiles: %w", err)
		}
		id, _ := hashObject(kindBlob, content)
		out[rel] = id
	}
	return out, nil
}
