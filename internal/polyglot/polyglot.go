// Package polyglot implements the assembler (component H) and ZIP-offset
// rewriter (component G): concatenating the prepared image, the script
// chunk, and the wrapped archive into one buffer, then walking the ZIP
// central directory to repoint every local-header offset at its new
// absolute position inside that buffer.
package polyglot

import (
	"encoding/binary"

	"github.com/CleasbyCode/pdvzip-go/internal/bytefield"
	"github.com/CleasbyCode/pdvzip-go/internal/chunk"
	"github.com/CleasbyCode/pdvzip-go/internal/crc32sum"
	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
)

var (
	zipLocalSig   = []byte{0x50, 0x4B, 0x03, 0x04}
	zipCentralSig = []byte{0x50, 0x4B, 0x01, 0x02}
	zipEOCDSig    = []byte{0x50, 0x4B, 0x05, 0x06}
)

// Build runs the assembler followed by the offset rewriter, then patches the
// trailing IDAT's CRC over the final, offset-rewritten bytes. The CRC must
// be computed last: rewriteOffsets mutates bytes inside the very region the
// CRC covers (the EOCD comment length, the start-of-central-directory
// pointer, and every central entry's local-header offset), so patching
// before the rewrite would leave a stale CRC.
func Build(preparedImage, scriptChunk, wrappedArchive []byte) ([]byte, error) {
	buf, archiveLocalOffset, err := assemble(preparedImage, scriptChunk, wrappedArchive)
	if err != nil {
		return nil, err
	}
	if err := rewriteOffsets(buf, archiveLocalOffset); err != nil {
		return nil, err
	}
	if err := patchTrailingIDATCRC(buf, archiveLocalOffset); err != nil {
		return nil, err
	}
	return buf, nil
}

// assemble performs component H: locate the prepared image's first IDAT,
// splice the script chunk immediately before it, and splice the wrapped
// archive immediately before IEND. Returns the finished buffer and the
// absolute offset of the wrapped archive's ZIP local-header signature
// within it. The wrapped archive's CRC placeholder is left zeroed here;
// Build patches it after rewriteOffsets runs.
func assemble(preparedImage, scriptChunk, wrappedArchive []byte) ([]byte, int, error) {
	firstIDATOffset, err := firstIDATOffset(preparedImage)
	if err != nil {
		return nil, 0, err
	}

	withScript := make([]byte, 0, len(preparedImage)+len(scriptChunk))
	withScript = append(withScript, preparedImage[:firstIDATOffset]...)
	withScript = append(withScript, scriptChunk...)
	withScript = append(withScript, preparedImage[firstIDATOffset:]...)

	if len(wrappedArchive) < 12 {
		return nil, 0, pdverr.New(pdverr.Invariant, "wrapped archive too small")
	}

	if len(withScript) < 12 {
		return nil, 0, pdverr.New(pdverr.Invariant, "assembled buffer too small for IEND")
	}
	insertAt := len(withScript) - 12

	final := make([]byte, 0, len(withScript)+len(wrappedArchive))
	final = append(final, withScript[:insertAt]...)
	final = append(final, wrappedArchive...)
	final = append(final, withScript[insertAt:]...)

	// The wrapped archive's local header sits 8 bytes into its own chunk
	// (length(4) + "IDAT"(4)), at the position where it was just spliced in.
	archiveLocalOffset := insertAt + 8
	if archiveLocalOffset+4 > len(final) || !matchesAt(final, archiveLocalOffset, zipLocalSig) {
		return nil, 0, pdverr.New(pdverr.Invariant, "wrapped archive local header not found at expected offset after assembly")
	}

	return final, archiveLocalOffset, nil
}

func firstIDATOffset(img []byte) (int, error) {
	chunks, err := chunk.ReadAll(img)
	if err != nil {
		return 0, pdverr.Wrap(pdverr.BadImage, err, "reading prepared image chunks")
	}
	for _, c := range chunks {
		if c.Type == chunk.TypeIDAT {
			return c.Offset, nil
		}
	}
	return 0, pdverr.New(pdverr.BadImage, "prepared image has no IDAT chunk")
}

// patchTrailingIDATCRC computes the CRC32 over the wrapped archive's "IDAT"
// name and its final, offset-rewritten data, then writes it into the
// trailing IDAT's 4-byte CRC field. It must run after rewriteOffsets: the
// wrapped archive's IDAT chunk ends immediately before IEND, so its CRC
// field occupies the 4 bytes just before IEND's fixed 12 bytes.
func patchTrailingIDATCRC(buf []byte, archiveLocalOffset int) error {
	nameStart := archiveLocalOffset - 4
	crcStart := len(buf) - 16
	crcEnd := len(buf) - 12
	if nameStart < 0 || crcStart < nameStart || crcEnd > len(buf) {
		return pdverr.New(pdverr.Invariant, "trailing IDAT bounds invalid for CRC patch")
	}

	crcVal := crc32sum.Sum(buf[nameStart:crcStart])
	binary.BigEndian.PutUint32(buf[crcStart:crcEnd], crcVal)
	return nil
}

func matchesAt(buf []byte, at int, needle []byte) bool {
	if at < 0 || at+len(needle) > len(buf) {
		return false
	}
	for i, b := range needle {
		if buf[at+i] != b {
			return false
		}
	}
	return true
}

// rewriteOffsets performs component G in place over buf, which must already
// contain the assembled polyglot with archiveLocalOffset pointing at the
// wrapped archive's first ZIP local-header signature.
func rewriteOffsets(buf []byte, archiveLocalOffset int) error {
	eocd := bytefield.FindSignatureReverse(buf, zipEOCDSig)
	if eocd < 0 {
		return pdverr.New(pdverr.Invariant, "end-of-central-directory signature not found")
	}

	recordCount, err := bytefield.ReadU16(buf, eocd+10, false)
	if err != nil {
		return pdverr.Wrap(pdverr.Invariant, err, "reading central-directory record count")
	}

	commentLen, err := bytefield.ReadU16(buf, eocd+20, false)
	if err != nil {
		return pdverr.Wrap(pdverr.Invariant, err, "reading end-of-central-directory comment length")
	}
	if err := writeU16LE(buf, eocd+20, commentLen+16); err != nil {
		return pdverr.Wrap(pdverr.Invariant, err, "writing extended comment length")
	}

	centralStart, err := locateFirstCentralEntry(buf, eocd, int(recordCount))
	if err != nil {
		return err
	}
	if err := writeU32LE(buf, eocd+16, uint32(centralStart)); err != nil {
		return pdverr.Wrap(pdverr.Invariant, err, "writing start-of-central-directory pointer")
	}

	localCursor := archiveLocalOffset
	centralCursor := centralStart
	for i := 0; i < int(recordCount); i++ {
		if !matchesAt(buf, centralCursor, zipCentralSig) {
			return pdverr.Newf(pdverr.Invariant, "central-directory entry signature not found at %d (record %d)", centralCursor, i)
		}
		if err := writeU32LE(buf, centralCursor+42, uint32(localCursor)); err != nil {
			return pdverr.Wrap(pdverr.Invariant, err, "writing local-header offset")
		}

		if i == int(recordCount)-1 {
			break
		}
		next := bytefield.FindSignature(buf, localCursor+4, zipLocalSig)
		if next < 0 {
			return pdverr.New(pdverr.Invariant, "could not locate next ZIP local header while rewriting offsets")
		}
		localCursor = next

		nextCentral := bytefield.FindSignature(buf, centralCursor+4, zipCentralSig)
		if nextCentral < 0 {
			return pdverr.New(pdverr.Invariant, "could not locate next central-directory entry while rewriting offsets")
		}
		centralCursor = nextCentral
	}

	return nil
}

// locateFirstCentralEntry finds the absolute offset of the first (earliest)
// central-directory entry by reverse-searching recordCount times, each
// search bounded by the previous match — spec.md §4.G step 4.
func locateFirstCentralEntry(buf []byte, eocd int, recordCount int) (int, error) {
	if recordCount == 0 {
		return 0, pdverr.New(pdverr.Invariant, "zero-record central directory")
	}
	pos := eocd
	found := -1
	for i := 0; i < recordCount; i++ {
		idx := bytefield.FindSignatureReverse(buf[:pos], zipCentralSig)
		if idx < 0 {
			return 0, pdverr.Newf(pdverr.Invariant, "central-directory entry %d not found scanning backward", i)
		}
		found = idx
		pos = idx
	}
	return found, nil
}

// writeU16LE and writeU32LE adapt bytefield's write functions, whose
// little-endian convention indexes the field's most-significant (last)
// byte, to this package's convention of addressing a field by its
// conventional ZIP start offset.
func writeU16LE(buf []byte, start int, value uint16) error {
	return bytefield.WriteU16(buf, start+1, value, false)
}

func writeU32LE(buf []byte, start int, value uint32) error {
	return bytefield.WriteU32(buf, start+3, value, false)
}
