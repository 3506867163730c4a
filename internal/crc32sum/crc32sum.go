// Package crc32sum is the CRC32 engine (component A): IEEE 802.3 CRC,
// polynomial 0xEDB88320, initial value 0xFFFFFFFF, final XOR 0xFFFFFFFF, per
// RFC 1952 / the PNG specification. Table-driven via the teacher's existing
// dependency on github.com/snksoft/crc rather than hand-rolling a second
// CRC32 table next to the one the standard library already ships.
package crc32sum

import "github.com/snksoft/crc"

// Sum computes the CRC32/IEEE checksum over data.
func Sum(data []byte) uint32 {
	return uint32(crc.CalculateCRC(crc.CRC32, data))
}

// SumChunk computes the CRC32 over a chunk's type‖data, which is the region
// the PNG spec actually checksums (length and the CRC field itself are
// excluded).
func SumChunk(chunkType [4]byte, data []byte) uint32 {
	buf := make([]byte, 0, 4+len(data))
	buf = append(buf, chunkType[:]...)
	buf = append(buf, data...)
	return Sum(buf)
}
