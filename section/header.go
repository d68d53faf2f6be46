package section

import (
	"github.com/nfshpr-tools/bundlekit/endian"
	"github.com/nfshpr-tools/bundlekit/errs"
)

// ArchiveHeader is the fixed 0x30-byte header every archive begins with.
// DataBlockOffset holds the byte offset of each of the four data blocks;
// only DataBlockOffset[0] and [1] ever bound non-empty content, but all
// four are always present on disk.
type ArchiveHeader struct {
	Version                uint32
	Platform                uint32
	DebugDataOffset         uint32
	ResourceEntriesCount    uint32
	ResourceEntriesOffset   uint32
	DataBlockOffset         [NumDataBlocks]uint32
	Flags                   uint32
	Pad                     uint32 // reserved trailing word, preserved verbatim across repack
}

// HasDebugInfo reports whether flag bit 3 selects a debug region.
func (h ArchiveHeader) HasDebugInfo() bool {
	return h.Flags&DebugInfoFlagBit != 0
}

// ParseArchiveHeader decodes a header from the first HeaderSize bytes of
// data. It validates the magic and platform.
func ParseArchiveHeader(data []byte) (ArchiveHeader, error) {
	var h ArchiveHeader

	if len(data) < HeaderSize {
		return h, errs.ErrInvalidHeaderSize
	}

	if string(data[0:4]) != Magic {
		return h, errs.ErrBadMagic
	}

	engine := endian.GetLittleEndianEngine()

	h.Version = engine.Uint32(data[4:8])
	h.Platform = engine.Uint32(data[8:12])
	if h.Platform != PlatformPC {
		return h, errs.ErrUnsupportedPlatform
	}

	h.DebugDataOffset = engine.Uint32(data[12:16])
	h.ResourceEntriesCount = engine.Uint32(data[16:20])
	h.ResourceEntriesOffset = engine.Uint32(data[20:24])
	for i := range h.DataBlockOffset {
		off := 0x18 + i*4
		h.DataBlockOffset[i] = engine.Uint32(data[off : off+4])
	}
	h.Flags = engine.Uint32(data[40:44])
	h.Pad = engine.Uint32(data[44:48])

	return h, nil
}

// Bytes encodes the header into a new HeaderSize-byte slice.
func (h ArchiveHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetLittleEndianEngine()

	copy(b[0:4], Magic)
	engine.PutUint32(b[4:8], h.Version)
	engine.PutUint32(b[8:12], h.Platform)
	engine.PutUint32(b[12:16], h.DebugDataOffset)
	engine.PutUint32(b[16:20], h.ResourceEntriesCount)
	engine.PutUint32(b[20:24], h.ResourceEntriesOffset)
	for i, off := range h.DataBlockOffset {
		pos := 0x18 + i*4
		engine.PutUint32(b[pos:pos+4], off)
	}
	engine.PutUint32(b[40:44], h.Flags)
	engine.PutUint32(b[44:48], h.Pad)

	return b
}
