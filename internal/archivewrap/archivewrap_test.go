package archivewrap

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
)

func buildZip(t *testing.T, names []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range names {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := f.Write([]byte("x")); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.Bytes()
}

func TestWrapAndReadFirstEntry(t *testing.T) {
	archive := buildZip(t, []string{"video.mp4"})
	wrapped, err := Wrap(archive)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if len(wrapped) != len(archive)+12 {
		t.Fatalf("wrapped length = %d, want %d", len(wrapped), len(archive)+12)
	}
	if string(wrapped[4:8]) != "IDAT" {
		t.Fatalf("missing IDAT name")
	}

	entry, err := ReadFirstEntry(wrapped)
	if err != nil {
		t.Fatalf("ReadFirstEntry: %v", err)
	}
	if entry.Filename != "video.mp4" {
		t.Fatalf("filename = %q, want video.mp4", entry.Filename)
	}
}

func TestWrapRejectsNonZip(t *testing.T) {
	_, err := Wrap([]byte("not a zip archive at all"))
	if pdverr.KindOf(err) != pdverr.BadArchive {
		t.Fatalf("expected BadArchive, got %v", err)
	}
}

func TestSelectFileTypeByExtension(t *testing.T) {
	cases := []struct {
		name string
		want FileType
	}{
		{"movie.mp4", VideoAudio},
		{"doc.pdf", PDF},
		{"run.py", Python},
		{"script.ps1", PowerShell},
		{"install.sh", BashShell},
		{"setup.exe", WindowsExecutable},
		{"program", LinuxExecutable},
		{"stuff.xyz", UnknownFileType},
	}
	for _, c := range cases {
		ft, err := SelectFileType(FirstEntry{Filename: c.name}, false)
		if err != nil {
			t.Fatalf("SelectFileType(%q): %v", c.name, err)
		}
		if ft != c.want {
			t.Fatalf("SelectFileType(%q) = %d, want %d", c.name, ft, c.want)
		}
	}
}

func TestSelectFileTypeFolder(t *testing.T) {
	ft, err := SelectFileType(FirstEntry{Filename: "assets/"}, false)
	if err != nil {
		t.Fatalf("SelectFileType: %v", err)
	}
	if ft != Folder {
		t.Fatalf("got %d, want Folder", ft)
	}
}

func TestSelectFileTypeInvalidFolderName(t *testing.T) {
	_, err := SelectFileType(FirstEntry{Filename: "assets./"}, false)
	if pdverr.KindOf(err) != pdverr.BadArchive {
		t.Fatalf("expected BadArchive for trailing-dot folder name, got %v", err)
	}
}

func TestSelectFileTypeJarRequiresManifest(t *testing.T) {
	_, err := SelectFileType(FirstEntry{Filename: "com/example/Main.class"}, true)
	if pdverr.KindOf(err) != pdverr.BadArchive {
		t.Fatalf("expected BadArchive for non-manifest first entry, got %v", err)
	}

	ft, err := SelectFileType(FirstEntry{Filename: "META-INF/MANIFEST.MF"}, true)
	if err != nil {
		t.Fatalf("SelectFileType: %v", err)
	}
	if ft != JAR {
		t.Fatalf("got %d, want JAR", ft)
	}
}
