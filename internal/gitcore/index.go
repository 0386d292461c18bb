package gitcore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Index is the flat staging map: repository-relative, forward-slash path to
// blob id. It carries no directory entries of its own.
type Index map[string]Hash

const indexFileName = "index"

// LoadIndex reads the JSON index file. A missing or unparseable file
// degrades to an empty index rather than failing, matching the tolerant
// load spec.md §4.D documents.
func LoadIndex(gitDir string) Index {
	data, err := os.ReadFile(filepath.Join(gitDir, indexFileName))
	if err != nil {
		return Index{}
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return Index{}
	}

	idx := make(Index, len(raw))
	for path, hash := range raw {
		idx[path] = Hash(hash)
	}
	return idx
}

// Save serializes idx as a JSON object to .git/index. encoding/json sorts
// string map keys when marshaling, so the serialized key order is always
// stable without extra bookkeeping here.
func (idx Index) Save(gitDir string) error {
	raw := make(map[string]string, len(idx))
	for path, hash := range idx {
		raw[path] = string(hash)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("Index.Save: %w", err)
	}

	if err := os.WriteFile(filepath.Join(gitDir, indexFileName), data, 0o644); err != nil {
		return fmt.Errorf("Index.Save: %w", err)
	}
	return nil
}
