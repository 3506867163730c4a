// Package archivewrap implements component D (wrapping a ZIP/JAR archive in
// a synthetic IDAT envelope so PNG decoders skip it) and component E (the
// file-type selector, mapping the first archive entry's extension to one of
// ten FileType extraction strategies).
package archivewrap

import (
	"strings"

	"github.com/CleasbyCode/pdvzip-go/internal/bytefield"
	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
)

// ZipLocalSignature is the ZIP local file header signature "PK\x03\x04".
var ZipLocalSignature = [4]byte{0x50, 0x4B, 0x03, 0x04}

// Wrap envelopes archive bytes in a synthetic IDAT chunk:
//
//	[0:4]    length = len(archive), big-endian u32 (see note below)
//	[4:8]    "IDAT"
//	[8:8+n]  archive bytes verbatim
//	[n+8:n+12] CRC placeholder (patched later by the assembler)
//
// The returned buffer's own length field equals len(archive), and the
// caller-visible wrapped length (len(Wrap(archive))) is len(archive)+12, so
// the chunk's length field (bytes 0..4) equals len(Wrap(archive))-12 as
// spec.md §3 Invariant 2 requires.
func Wrap(archive []byte) ([]byte, error) {
	if len(archive) < 8 || [4]byte(archive[:4]) != ZipLocalSignature {
		return nil, pdverr.New(pdverr.BadArchive, "archive missing ZIP local file header signature")
	}

	wrapped := make([]byte, len(archive)+12)
	if err := bytefield.WriteU32(wrapped, 0, uint32(len(archive)), true); err != nil {
		return nil, pdverr.Wrap(pdverr.Invariant, err, "writing wrapped-archive length")
	}
	copy(wrapped[4:8], []byte("IDAT"))
	copy(wrapped[8:], archive)
	// bytes [len-4:len] remain zero; the assembler patches the real CRC.

	if !matchesLocalSignature(wrapped) {
		return nil, pdverr.New(pdverr.BadArchive, "wrapped buffer missing ZIP local file header at offset 8")
	}
	return wrapped, nil
}

func matchesLocalSignature(wrapped []byte) bool {
	if len(wrapped) < 12 {
		return false
	}
	return [4]byte(wrapped[8:12]) == ZipLocalSignature
}

// FileType is the extraction strategy selected from the archive's first
// entry.
type FileType int

const (
	VideoAudio FileType = iota
	PDF
	Python
	PowerShell
	BashShell
	WindowsExecutable
	Folder
	LinuxExecutable
	JAR
	UnknownFileType
)

// extensionTable maps a lowercased extension (without the dot) to a
// FileType. Indices 0..29 all map to VideoAudio; this reflects that the
// table was evidently appended to over time rather than kept sorted by
// FileType (spec.md §9) — it is preserved unsorted, not reorganized.
var extensionTable = map[string]FileType{
	"mp4": VideoAudio, "mp3": VideoAudio, "wav": VideoAudio, "mpg": VideoAudio,
	"webm": VideoAudio, "flac": VideoAudio, "3gp": VideoAudio, "aac": VideoAudio,
	"aiff": VideoAudio, "aif": VideoAudio, "alac": VideoAudio, "ape": VideoAudio,
	"avchd": VideoAudio, "avi": VideoAudio, "dsd": VideoAudio, "divx": VideoAudio,
	"f4v": VideoAudio, "flv": VideoAudio, "m4a": VideoAudio, "m4v": VideoAudio,
	"mkv": VideoAudio, "mov": VideoAudio, "midi": VideoAudio, "mpeg": VideoAudio,
	"ogg": VideoAudio, "pcm": VideoAudio, "swf": VideoAudio, "wma": VideoAudio,
	"wmv": VideoAudio, "xvid": VideoAudio,
	"pdf":  PDF,
	"py":   Python,
	"ps1":  PowerShell,
	"sh":   BashShell,
	"exe":  WindowsExecutable,
}

// FirstEntry describes the archive's first local-header entry as needed by
// the selector: its filename. Whether the archive is a JAR is passed to
// SelectFileType separately.
type FirstEntry struct {
	Filename string
}

// ReadFirstEntry extracts the first ZIP local record's filename from a
// wrapped buffer: filename length is the u16 LE at wrapped-offset +34
// (archive-offset +26), filename starts at wrapped-offset +38.
func ReadFirstEntry(wrapped []byte) (FirstEntry, error) {
	nameLen, err := bytefield.ReadU16(wrapped, 34, false)
	if err != nil {
		return FirstEntry{}, pdverr.Wrap(pdverr.Invariant, err, "reading first-entry filename length")
	}
	if nameLen < 4 {
		return FirstEntry{}, pdverr.Newf(pdverr.BadArchive, "first entry filename too short: %d", nameLen)
	}
	nameStart := 38
	nameEnd := nameStart + int(nameLen)
	if nameEnd > len(wrapped) {
		return FirstEntry{}, pdverr.New(pdverr.Invariant, "first entry filename out of bounds")
	}
	return FirstEntry{Filename: string(wrapped[nameStart:nameEnd])}, nil
}

// SelectFileType maps the first entry's filename to a FileType, per spec.md
// §4.E. isJar signals the caller supplied a .jar archive (by its own file
// extension, not the first entry's).
func SelectFileType(entry FirstEntry, isJar bool) (FileType, error) {
	name := entry.Filename

	if isJar {
		if name != "META-INF/MANIFEST.MF" && name != "META-INF/" {
			return 0, pdverr.Newf(pdverr.BadArchive, "JAR first entry must be META-INF/MANIFEST.MF or META-INF/, got %q", name)
		}
		return JAR, nil
	}

	last := name[len(name)-1]
	dot := strings.LastIndexByte(name, '.')

	if last == '/' {
		if dot == len(name)-2 {
			return 0, pdverr.Newf(pdverr.BadArchive, "invalid folder entry name: %q", name)
		}
		return Folder, nil
	}

	if dot < 0 {
		return LinuxExecutable, nil
	}

	ext := strings.ToLower(name[dot+1:])
	ft, ok := extensionTable[ext]
	if !ok {
		return UnknownFileType, nil
	}
	return ft, nil
}
