package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCreatesExecutableFile(t *testing.T) {
	dir := t.TempDir()
	name, err := Write(dir, KindZip, []byte("polyglot bytes"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Fatalf("expected owner-execute bit set, got mode %v", info.Mode())
	}
	if info.Size() != int64(len("polyglot bytes")) {
		t.Fatalf("size = %d, want %d", info.Size(), len("polyglot bytes"))
	}
}
