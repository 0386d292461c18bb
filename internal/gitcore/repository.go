package gitcore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Repository is a handle onto a working directory and its .git metadata
// directory.
type Repository struct {
	gitDir  string
	workDir string
}

// GitDir returns the path to the repository's .git directory.
func (r *Repository) GitDir() string { return r.gitDir }

// WorkDir returns the repository's working directory.
func (r *Repository) WorkDir() string { return r.workDir }

// Open locates the .git directory by walking upward from startDir through
// parent directories, bounded by the filesystem root — the way git itself
// resolves the repository root from any subdirectory.
func Open(startDir string) (*Repository, error) {
	absPath, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}

	current := absPath
	for {
		gitDir := filepath.Join(current, metaDir)
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return &Repository{gitDir: gitDir, workDir: current}, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, startDir)
		}
		current = parent
	}
}

// DefaultBranch is the name given to the initial branch by Init.
const DefaultBranch = "master"

// Init creates a new repository rooted at dir: the .git layout, an empty
// index, and HEAD pointing at the default branch. It fails soft
// (created=false, err=nil) if a .git directory already exists there.
func Init(dir string) (created bool, err error) {
	gitDir := filepath.Join(dir, metaDir)
	if info, statErr := os.Stat(gitDir); statErr == nil && info.IsDir() {
		return false, nil
	}

	for _, sub := range []string{"", "objects", filepath.Join("refs", "heads")} {
		if mkErr := os.MkdirAll(filepath.Join(gitDir, sub), 0o755); mkErr != nil {
			return false, fmt.Errorf("Init: %w", mkErr)
		}
	}

	if err := SetHead(gitDir, DefaultBranch); err != nil {
		return false, fmt.Errorf("Init: %w", err)
	}
	if err := (Index{}).Save(gitDir); err != nil {
		return false, fmt.Errorf("Init: %w", err)
	}

	return true, nil
}
