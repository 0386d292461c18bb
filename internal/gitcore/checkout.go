package gitcore

import "fmt"

// Checkout switches the current branch to target, restoring the working
// directory to match its tree. This unconditionally discards uncommitted
// edits to tracked files — there is no "dirty working tree" guard; callers
// are expected to consult Status first.
//
// If target has no ref yet: when create is true and the previous branch
// has a commit, target is created pointing at it; when create is true but
// the previous branch is unborn, ErrUnbornBranch is returned; when create
// is false, ErrBranchNotFound is returned.
func (r *Repository) Checkout(target string, create bool) error {
	previousBranch, err := CurrentBranch(r.gitDir)
	if err != nil {
		return fmt.Errorf("Checkout: %w", err)
	}
	previousCommit, err := BranchCommit(r.gitDir, previousBranch)
	if err != nil {
		return fmt.Errorf("Checkout: %w", err)
	}

	filesToClear, err := r.trackedFiles(previousCommit)
	if err != nil {
		return fmt.Errorf("Checkout: %w", err)
	}

	targetCommit, err := BranchCommit(r.gitDir, target)
	if err != nil {
		return fmt.Errorf("Checkout: %w", err)
	}

	if targetCommit == "" {
		switch {
		case !create:
			return fmt.Errorf("%w: %s", ErrBranchNotFound, target)
		case previousCommit == "":
			return fmt.Errorf("%w: no commits yet", ErrUnbornBranch)
		default:
			if err := SetBranch(r.gitDir, target, previousCommit); err != nil {
				return fmt.Errorf("Checkout: %w", err)
			}
			targetCommit = previousCommit
		}
	}

	if err := SetHead(r.gitDir, target); err != nil {
		return fmt.Errorf("Checkout: %w", err)
	}
	if err := ClearFiles(r.workDir, filesToClear); err != nil {
		return fmt.Errorf("Checkout: %w", err)
	}

	if targetCommit != "" {
		commit, err := ReadCommit(r.gitDir, targetCommit)
		if err != nil {
			return fmt.Errorf("Checkout: %w", err)
		}
		if err := RestoreTree(r.gitDir, r.workDir, commit.Tree); err != nil {
			return fmt.Errorf("Checkout: %w", err)
		}
	}

	if err := (Index{}).Save(r.gitDir); err != nil {
		return fmt.Errorf("Checkout: %w", err)
	}
	return nil
}

// trackedFiles returns the set of repository-relative file paths reachable
// from commit's tree, or an empty set when commit is "" (no previous
// commit to clear).
func (r *Repository) trackedFiles(commit Hash) (map[string]struct{}, error) {
	result := make(map[string]struct{})
	if commit == "" {
		return result, nil
	}

	c, err := ReadCommit(r.gitDir, commit)
	if err != nil {
		return nil, err
	}
	flat, err := FlattenTree(r.gitDir, c.Tree)
	if err != nil {
		return nil, err
	}
	for p := range flat {
		result[p] = struct{}{}
	}
	return result, nil
}
