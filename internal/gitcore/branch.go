package gitcore

import "fmt"

// BranchList returns all branch names sorted, each prefixed with "* " for
// the current branch or "  " otherwise.
func (r *Repository) BranchList() ([]string, error) {
	names, err := ListBranches(r.gitDir)
	if err != nil {
		return nil, fmt.Errorf("BranchList: %w", err)
	}
	current, err := CurrentBranch(r.gitDir)
	if err != nil {
		return nil, fmt.Errorf("BranchList: %w", err)
	}

	out := make([]string, len(names))
	for i, n := range names {
		if n == current {
			out[i] = "* " + n
		} else {
			out[i] = "  " + n
		}
	}
	return out, nil
}

// BranchCreate creates name at the current branch's commit, erroring when
// there is no commit yet.
func (r *Repository) BranchCreate(name string) error {
	current, err := CurrentBranch(r.gitDir)
	if err != nil {
		return fmt.Errorf("BranchCreate: %w", err)
	}
	commit, err := BranchCommit(r.gitDir, current)
	if err != nil {
		return fmt.Errorf("BranchCreate: %w", err)
	}
	if commit == "" {
		return fmt.Errorf("%w: no commits yet", ErrUnbornBranch)
	}
	if err := SetBranch(r.gitDir, name, commit); err != nil {
		return fmt.Errorf("BranchCreate: %w", err)
	}
	return nil
}

// BranchDelete removes name's ref, if present.
func (r *Repository) BranchDelete(name string) error {
	if err := DeleteBranch(r.gitDir, name); err != nil {
		return fmt.Errorf("BranchDelete: %w", err)
	}
	return nil
}
