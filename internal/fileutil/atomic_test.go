package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "highscores.json")
	testData := []byte(`[["max",150,"29-08-26"]]`)

	err := WriteFileAtomic(testFile, testData, 0644)
	if err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != string(testData) {
		t.Errorf("File content mismatch: got %q, want %q", string(data), string(testData))
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("File permissions mismatch: got %o, want %o", info.Mode().Perm(), 0644)
	}

	// No temp files should remain after a successful replace
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "highscores.json" {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "highscores.json")

	if err := WriteFileAtomic(testFile, []byte("old"), 0644); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := WriteFileAtomic(testFile, []byte("new"), 0644); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("File content mismatch: got %q, want %q", string(data), "new")
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "file.json"), []byte("x"), 0644)
	if err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}
