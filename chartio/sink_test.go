package chartio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph_line.svg")
	content := []byte("<svg></svg>")
	if err := WriteFile(path, content); err != nil {
		t.Fatalf("can't write document: %s", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("read back %q, want %q", got, content)
	}
}

func TestWriteFileFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "graph_line.svg")
	if err := WriteFile(path, []byte("x")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
