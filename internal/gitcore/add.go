package gitcore

import (
	"fmt"
	"os"
	"path/filepath"
)

// Add stages path into the index. If path is a file, it is hashed and
// stored as a Blob. If path is a directory, every regular file beneath it
// is added recursively, skipping the metadata directory.
func (r *Repository) Add(path string) error {
	idx := LoadIndex(r.gitDir)
	if err := r.addPath(idx, path); err != nil {
		return err
	}
	return idx.Save(r.gitDir)
}

func (r *Repository) addPath(idx Index, path string) error {
	full := filepath.Join(r.workDir, path)

	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return fmt.Errorf("Add: %w", err)
	}

	if info.IsDir() {
		return r.addDir(idx, full)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrInvalidPathKind, path)
	}
	return r.addFile(idx, full)
}

func (r *Repository) addDir(idx Index, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("Add: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() && e.Name() == metaDir {
			continue
		}
		child := filepath.Join(dir, e.Name())

		if e.IsDir() {
			if err := r.addDir(idx, child); err != nil {
				return err
			}
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		if err := r.addFile(idx, child); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) addFile(idx Index, full string) error {
	rel, err := filepath.Rel(r.workDir, full)
	if err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	rel = filepath.ToSlash(rel)

	content, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("Add: %w", err)
	}

	id, err := StoreBlob(r.gitDir, content)
	if err != nil {
		return fmt.Errorf("Add: %w", err)
	}

	idx[rel] = id
	return nil
}
