package gitcore

import "fmt"

// Log walks first-parent history starting at the current branch's commit,
// most recent first, stopping after max commits. max <= 0 means unbounded.
func (r *Repository) Log(max int) ([]*Commit, error) {
	branch, err := CurrentBranch(r.gitDir)
	if err != nil {
		return nil, fmt.Errorf("Log: %w", err)
	}
	id, err := BranchCommit(r.gitDir, branch)
	if err != nil {
		return nil, fmt.Errorf("Log: %w", err)
	}

	var out []*Commit
	for id != "" {
		if max > 0 && len(out) >= max {
			break
		}
		c, err := ReadCommit(r.gitDir, id)
		if err != nil {
			return nil, fmt.Errorf("Log: %w", err)
		}
		out = append(out, c)

		if len(c.Parents) == 0 {
			break
		}
		id = c.Parents[0]
	}
	return out, nil
}
