package polyglot

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"testing"

	"github.com/CleasbyCode/pdvzip-go/internal/archivewrap"
	"github.com/CleasbyCode/pdvzip-go/internal/bytefield"
	"github.com/CleasbyCode/pdvzip-go/internal/crc32sum"
	"github.com/CleasbyCode/pdvzip-go/internal/pngprep"
	"github.com/CleasbyCode/pdvzip-go/internal/scripts"
)

func buildTestZip(t *testing.T, names []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range names {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := f.Write([]byte("payload")); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.Bytes()
}

func buildTestCover(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 80, 80))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode cover: %v", err)
	}
	out, err := pngprep.Prepare(buf.Bytes())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return out
}

func TestBuildRewritesOffsetsToValidZip(t *testing.T) {
	cover := buildTestCover(t)
	archive := buildTestZip(t, []string{"run.sh"})

	wrapped, err := archivewrap.Wrap(archive)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	entry, err := archivewrap.ReadFirstEntry(wrapped)
	if err != nil {
		t.Fatalf("ReadFirstEntry: %v", err)
	}
	ft, err := archivewrap.SelectFileType(entry, false)
	if err != nil {
		t.Fatalf("SelectFileType: %v", err)
	}
	scriptChunk, err := scripts.Build(ft, entry.Filename, scripts.Args{})
	if err != nil {
		t.Fatalf("scripts.Build: %v", err)
	}

	out, err := Build(cover, scriptChunk, wrapped)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if !bytes.Equal(out[len(out)-12:], []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}) {
		t.Fatalf("output missing IEND trailer")
	}

	r, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("rewritten polyglot is not a parseable zip: %v", err)
	}
	if len(r.File) != 1 || r.File[0].Name != "run.sh" {
		t.Fatalf("unexpected zip contents: %+v", r.File)
	}
	rc, err := r.File[0].Open()
	if err != nil {
		t.Fatalf("Open entry: %v", err)
	}
	defer rc.Close()
}

func TestBuildMultiEntryArchive(t *testing.T) {
	cover := buildTestCover(t)
	archive := buildTestZip(t, []string{"a.txt", "b.txt", "c.txt"})

	wrapped, err := archivewrap.Wrap(archive)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	entry, err := archivewrap.ReadFirstEntry(wrapped)
	if err != nil {
		t.Fatalf("ReadFirstEntry: %v", err)
	}
	ft, err := archivewrap.SelectFileType(entry, false)
	if err != nil {
		t.Fatalf("SelectFileType: %v", err)
	}
	scriptChunk, err := scripts.Build(ft, entry.Filename, scripts.Args{})
	if err != nil {
		t.Fatalf("scripts.Build: %v", err)
	}

	out, err := Build(cover, scriptChunk, wrapped)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("rewritten polyglot is not a parseable zip: %v", err)
	}
	if len(r.File) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(r.File))
	}
}

// TestBuildTrailingIDATCRCMatchesFinalBytes guards against patching the
// trailing IDAT's CRC before rewriteOffsets mutates the EOCD/central-directory
// bytes it covers, which would leave the stored CRC stale.
func TestBuildTrailingIDATCRCMatchesFinalBytes(t *testing.T) {
	cover := buildTestCover(t)
	archive := buildTestZip(t, []string{"a.txt", "b.txt", "c.txt"})

	wrapped, err := archivewrap.Wrap(archive)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	entry, err := archivewrap.ReadFirstEntry(wrapped)
	if err != nil {
		t.Fatalf("ReadFirstEntry: %v", err)
	}
	ft, err := archivewrap.SelectFileType(entry, false)
	if err != nil {
		t.Fatalf("SelectFileType: %v", err)
	}
	scriptChunk, err := scripts.Build(ft, entry.Filename, scripts.Args{})
	if err != nil {
		t.Fatalf("scripts.Build: %v", err)
	}

	out, err := Build(cover, scriptChunk, wrapped)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// The wrapped archive is the last chunk before IEND; its first ZIP local
	// header (not the last entry's) starts the CRC-covered data.
	trailingIDAT := bytefield.FindSignature(out, len(out)-12-len(wrapped), zipLocalSig)
	if trailingIDAT < 0 {
		t.Fatal("could not locate trailing IDAT's ZIP local header")
	}
	nameStart := trailingIDAT - 4
	crcStart := len(out) - 16
	crcEnd := len(out) - 12

	want := crc32sum.Sum(out[nameStart:crcStart])
	got := binary.BigEndian.Uint32(out[crcStart:crcEnd])
	if got != want {
		t.Fatalf("trailing IDAT CRC = %#x, want %#x (computed over final rewritten bytes)", got, want)
	}
}
