// Package bytefield implements the byte-field codec (component B): reading
// and writing big- and little-endian 16/32-bit integers at fixed offsets,
// and forward/reverse signature search. PNG fields are big-endian; ZIP
// fields are little-endian. The two are never unified behind a single
// endian-less helper (spec.md §9) — every function here takes an explicit
// bigEndian argument instead of guessing from context.
package bytefield

import (
	"encoding/binary"

	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
)

// ReadU32 returns the 32-bit integer stored at buf[index:index+4].
func ReadU32(buf []byte, index int, bigEndian bool) (uint32, error) {
	if index < 0 || index+4 > len(buf) {
		return 0, pdverr.Newf(pdverr.Invariant, "ReadU32 out of bounds: index=%d len=%d", index, len(buf))
	}
	if bigEndian {
		return binary.BigEndian.Uint32(buf[index : index+4]), nil
	}
	return binary.LittleEndian.Uint32(buf[index : index+4]), nil
}

// ReadU16 returns the 16-bit integer stored at buf[index:index+2].
func ReadU16(buf []byte, index int, bigEndian bool) (uint16, error) {
	if index < 0 || index+2 > len(buf) {
		return 0, pdverr.Newf(pdverr.Invariant, "ReadU16 out of bounds: index=%d len=%d", index, len(buf))
	}
	if bigEndian {
		return binary.BigEndian.Uint16(buf[index : index+2]), nil
	}
	return binary.LittleEndian.Uint16(buf[index : index+2]), nil
}

// WriteU32 overwrites buf[index:index+4] with value. For little-endian
// writes, index is the position of the field's MOST significant byte and
// bytes are written at decreasing indices — this mirrors the ZIP convention
// of locating a field by the offset of its last (highest) byte.
func WriteU32(buf []byte, index int, value uint32, bigEndian bool) error {
	if bigEndian {
		if index < 0 || index+4 > len(buf) {
			return pdverr.Newf(pdverr.Invariant, "WriteU32 out of bounds: index=%d len=%d", index, len(buf))
		}
		binary.BigEndian.PutUint32(buf[index:index+4], value)
		return nil
	}
	if index-3 < 0 || index >= len(buf) {
		return pdverr.Newf(pdverr.Invariant, "WriteU32 (LE) out of bounds: index=%d len=%d", index, len(buf))
	}
	for i := 0; i < 4; i++ {
		buf[index-i] = byte(value >> (8 * uint(3-i)))
	}
	return nil
}

// WriteU16 is WriteU32's 16-bit counterpart.
func WriteU16(buf []byte, index int, value uint16, bigEndian bool) error {
	if bigEndian {
		if index < 0 || index+2 > len(buf) {
			return pdverr.Newf(pdverr.Invariant, "WriteU16 out of bounds: index=%d len=%d", index, len(buf))
		}
		binary.BigEndian.PutUint16(buf[index:index+2], value)
		return nil
	}
	if index-1 < 0 || index >= len(buf) {
		return pdverr.Newf(pdverr.Invariant, "WriteU16 (LE) out of bounds: index=%d len=%d", index, len(buf))
	}
	buf[index] = byte(value >> 8)
	buf[index-1] = byte(value)
	return nil
}

// FindSignature returns the absolute offset of the first occurrence of
// needle in buf at or after start, or -1 if not found.
func FindSignature(buf []byte, start int, needle []byte) int {
	if start < 0 {
		start = 0
	}
	for i := start; i+len(needle) <= len(buf); i++ {
		if matches(buf, i, needle) {
			return i
		}
	}
	return -1
}

// FindSignatureReverse searches backward from the end of buf, used for
// locating the end-of-central-directory and central-directory signatures to
// avoid false matches inside embedded image bytes.
func FindSignatureReverse(buf []byte, needle []byte) int {
	for i := len(buf) - len(needle); i >= 0; i-- {
		if matches(buf, i, needle) {
			return i
		}
	}
	return -1
}

func matches(buf []byte, at int, needle []byte) bool {
	for j, b := range needle {
		if buf[at+j] != b {
			return false
		}
	}
	return true
}
