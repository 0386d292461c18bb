package gitcore

import (
	"fmt"
	"time"
)

// Commit snapshots the current index as a new commit on the current
// branch. Two conditions are a no-op rather than an error — neither writes
// any object nor changes any ref — matching spec.md §4.H exactly:
//
//  1. the index is empty and there is no parent commit;
//  2. the computed root tree is identical to the parent's root tree.
//
// Otherwise it stores the commit object, advances the branch ref, clears
// the index, and returns the new commit id.
func (r *Repository) Commit(message, author string, now time.Time) (id Hash, noop bool, err error) {
	if message == "" {
		return "", false, ErrMessageRequired
	}

	branch, err := CurrentBranch(r.gitDir)
	if err != nil {
		return "", false, fmt.Errorf("Commit: %w", err)
	}

	parent, err := BranchCommit(r.gitDir, branch)
	if err != nil {
		return "", false, fmt.Errorf("Commit: %w", err)
	}

	idx := LoadIndex(r.gitDir)
	if len(idx) == 0 && parent == "" {
		return "", true, nil
	}

	treeID, err := BuildTree(r.gitDir, idx)
	if err != nil {
		return "", false, fmt.Errorf("Commit: %w", err)
	}

	var parents []Hash
	if parent != "" {
		parentCommit, err := ReadCommit(r.gitDir, parent)
		if err != nil {
			return "", false, fmt.Errorf("Commit: %w", err)
		}
		if parentCommit.Tree == treeID {
			return "", true, nil
		}
		parents = []Hash{parent}
	}

	name, email := parseIdentity(author)
	sig := Signature{Name: name, Email: email, When: now}

	commit := &Commit{
		Tree:      treeID,
		Parents:   parents,
		Author:    sig,
		Committer: sig,
		Message:   message,
	}

	commitID, err := StoreCommit(r.gitDir, commit)
	if err != nil {
		return "", false, fmt.Errorf("Commit: %w", err)
	}

	if err := SetBranch(r.gitDir, branch, commitID); err != nil {
		return "", false, fmt.Errorf("Commit: %w", err)
	}
	if err := (Index{}).Save(r.gitDir); err != nil {
		return "", false, fmt.Errorf("Commit: %w", err)
	}

	return commitID, false, nil
}
