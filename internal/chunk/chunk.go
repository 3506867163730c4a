// Package chunk models the PNG chunk layout: a four-byte big-endian length,
// a four-byte type name, the data bytes, and a four-byte CRC32 over
// type‖data. Unlike a streaming decoder, every chunk here is read from and
// written back into a single owned []byte buffer, because the assembler
// needs index-based splice-insertion rather than iterator-invalidating
// stream views (spec.md §9).
package chunk

import (
	"encoding/binary"

	"github.com/CleasbyCode/pdvzip-go/internal/crc32sum"
	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
)

// Signature is the 8-byte PNG file signature.
var Signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// IENDBytes is the fixed 12-byte encoding of an empty IEND chunk.
var IENDBytes = [12]byte{0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82}

// ChunkType is a 4-byte PNG chunk type name.
type ChunkType [4]byte

func (c ChunkType) String() string { return string(c[:]) }

// IsCritical reports whether the first byte of the type name is uppercase.
func (c ChunkType) IsCritical() bool { return c[0] >= 'A' && c[0] <= 'Z' }

var (
	TypeIHDR = ChunkType{'I', 'H', 'D', 'R'}
	TypePLTE = ChunkType{'P', 'L', 'T', 'E'}
	TypeIDAT = ChunkType{'I', 'D', 'A', 'T'}
	TypeIEND = ChunkType{'I', 'E', 'N', 'D'}
	TypetRNS = ChunkType{'t', 'R', 'N', 'S'}
	TypeiCCP = ChunkType{'i', 'C', 'C', 'P'}
)

// Chunk is one decoded PNG chunk.
type Chunk struct {
	Length uint32
	Type   ChunkType
	Data   []byte
	Crc    uint32

	// Offset is the chunk's absolute start (its length field) within the
	// buffer it was read from. Populated by ReadAll, unused by Bytes.
	Offset int
}

// IHDR is the parsed content of an IHDR chunk's 13 data bytes.
type IHDR struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// ParseIHDR decodes a Chunk's data as an IHDR payload.
func ParseIHDR(c *Chunk) (IHDR, error) {
	if len(c.Data) != 13 {
		return IHDR{}, pdverr.Newf(pdverr.BadImage, "invalid IHDR length: %d", len(c.Data))
	}
	return IHDR{
		Width:             binary.BigEndian.Uint32(c.Data[0:4]),
		Height:            binary.BigEndian.Uint32(c.Data[4:8]),
		BitDepth:          c.Data[8],
		ColorType:         c.Data[9],
		CompressionMethod: c.Data[10],
		FilterMethod:      c.Data[11],
		InterlaceMethod:   c.Data[12],
	}, nil
}

// Bytes re-serializes a chunk: length ‖ type ‖ data ‖ crc.
func (c *Chunk) Bytes() []byte {
	out := make([]byte, 0, 12+len(c.Data))
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(c.Data)))
	out = append(out, lenBuf[:]...)
	out = append(out, c.Type[:]...)
	out = append(out, c.Data...)
	crcVal := crc32sum.SumChunk(c.Type, c.Data)
	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crcVal)
	out = append(out, crcBuf[:]...)
	return out
}

// ReadAt decodes a single chunk starting at offset in buf and returns the
// chunk plus the offset immediately following it.
func ReadAt(buf []byte, offset int) (*Chunk, int, error) {
	if offset+8 > len(buf) {
		return nil, 0, pdverr.Newf(pdverr.Invariant, "chunk header out of bounds at %d", offset)
	}
	length := binary.BigEndian.Uint32(buf[offset : offset+4])
	var ct ChunkType
	copy(ct[:], buf[offset+4:offset+8])
	dataStart := offset + 8
	dataEnd := dataStart + int(length)
	if dataEnd+4 > len(buf) {
		return nil, 0, pdverr.Newf(pdverr.Invariant, "chunk data out of bounds at %d (length=%d)", offset, length)
	}
	data := buf[dataStart:dataEnd]
	crcVal := binary.BigEndian.Uint32(buf[dataEnd : dataEnd+4])
	return &Chunk{Length: length, Type: ct, Data: data, Crc: crcVal, Offset: offset}, dataEnd + 4, nil
}

// ReadAll decodes every chunk in buf starting at offset 8 (just past the PNG
// signature) through IEND.
func ReadAll(buf []byte) ([]*Chunk, error) {
	if len(buf) < 8 || [8]byte(buf[:8]) != Signature {
		return nil, pdverr.New(pdverr.BadImage, "missing PNG signature")
	}
	var chunks []*Chunk
	offset := 8
	for offset < len(buf) {
		c, next, err := ReadAt(buf, offset)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
		offset = next
		if c.Type == TypeIEND {
			break
		}
	}
	return chunks, nil
}

// VerifyCRC reports whether a chunk's stored CRC matches type‖data.
func VerifyCRC(c *Chunk) bool {
	return crc32sum.SumChunk(c.Type, c.Data) == c.Crc
}
