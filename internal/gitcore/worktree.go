package gitcore

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// metaDir is the name of the repository metadata directory, skipped at any
// depth during working-tree traversal.
const metaDir = ".git"

// EnumerateWorkingFiles walks root depth-first and returns every regular
// file's repository-relative, forward-slash path, skipping the metadata
// directory wherever it appears.
func EnumerateWorkingFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == metaDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("EnumerateWorkingFiles: %w", err)
	}
	return files, nil
}

// RestoreTree materializes the tree identified by treeID into dir, writing
// blob contents to disk and creating subdirectories as needed.
func RestoreTree(gitDir, dir string, treeID Hash) error {
	tree, err := ReadTree(gitDir, treeID)
	if err != nil {
		return fmt.Errorf("RestoreTree: %w", err)
	}

	for _, entry := range tree.Entries {
		target := filepath.Join(dir, entry.Name)

		if isDirMode(entry.Mode) {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("RestoreTree: %w", err)
			}
			if err := RestoreTree(gitDir, target, entry.ID); err != nil {
				return err
			}
			continue
		}

		content, err := ReadBlob(gitDir, entry.ID)
		if err != nil {
			return fmt.Errorf("RestoreTree: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("RestoreTree: %w", err)
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return fmt.Errorf("RestoreTree: %w", err)
		}
	}

	return nil
}

// ClearFiles deletes every path in paths that exists as a regular file
// under root. Missing paths are ignored; directories are never removed,
// including ones left empty by this clear.
func ClearFiles(root string, paths map[string]struct{}) error {
	for p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))

		info, err := os.Lstat(full)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("ClearFiles: %w", err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if err := os.Remove(full); err != nil {
			return fmt.Errorf("ClearFiles: %w", err)
		}
	}
	return nil
}
