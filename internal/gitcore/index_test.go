package gitcore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIndex_SaveLoadRoundTrip(t *testing.T) {
	gitDir := t.TempDir()

	idx := Index{"a.txt": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "b.txt": "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}
	if err := idx.Save(gitDir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := LoadIndex(gitDir)
	if len(loaded) != 2 || loaded["a.txt"] != idx["a.txt"] || loaded["b.txt"] != idx["b.txt"] {
		t.Fatalf("LoadIndex = %v, want %v", loaded, idx)
	}
}

func TestIndex_EmptySerializesToEmptyObject(t *testing.T) {
	gitDir := t.TempDir()

	if err := (Index{}).Save(gitDir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(gitDir, "index"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("index contents = %q, want %q", data, "{}")
	}
}

func TestIndex_MissingLoadsEmpty(t *testing.T) {
	gitDir := t.TempDir()

	idx := LoadIndex(gitDir)
	if len(idx) != 0 {
		t.Fatalf("LoadIndex on missing file = %v, want empty", idx)
	}
}

func TestIndex_CorruptLoadsEmpty(t *testing.T) {
	gitDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(gitDir, "index"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	idx := LoadIndex(gitDir)
	if len(idx) != 0 {
		t.Fatalf("LoadIndex on corrupt file = %v, want empty", idx)
	}
}
