package section

import (
	"github.com/nfshpr-tools/bundlekit/endian"
	"github.com/nfshpr-tools/bundlekit/errs"
	"github.com/nfshpr-tools/bundlekit/format"
)

// ResourceEntry is one fixed 0x50-byte record of the archive's entry
// table. UncompressedSize holds the actual pre-compression byte length of
// each stream — the per-type alignment nibble that shares the field's top
// 4 bits on disk is never stored here; Parse strips it without checking
// it against format.Nibbles, Bytes re-OR's the table value back in.
type ResourceEntry struct {
	Identity       [4]byte
	CountBlock     uint8
	Count          uint8
	IsIDInteger    uint8
	TypeID         format.ResourceType

	UncompressedSize [NumStreams]uint32
	CompressedSize   [NumStreams]uint32
	Offset           [NumStreams]uint32

	ImportCount  uint16
	StreamIndex  uint8
}

// ParseResourceEntry decodes one entry from its EntrySize-byte record.
func ParseResourceEntry(data []byte) (ResourceEntry, error) {
	var e ResourceEntry

	if len(data) < EntrySize {
		return e, errs.ErrInvalidEntrySize
	}

	engine := endian.GetLittleEndianEngine()

	copy(e.Identity[:], data[0:4])
	e.CountBlock = data[4]
	// data[5] is reserved, always zero.
	e.Count = data[6]
	e.IsIDInteger = data[7]
	// data[8:16] are the two reserved hashes, discarded on read.

	e.TypeID = format.ResourceType(engine.Uint32(data[0x44:0x48]))
	nibbles := format.Nibbles(e.TypeID)

	for i := 0; i < NumStreams; i++ {
		off := 0x10 + i*4
		raw := engine.Uint32(data[off : off+4])
		e.UncompressedSize[i] = raw & 0x0FFFFFFF
		// The top nibble is a static function of type_id; callers that need
		// to assert it matches the table can compare against format.Nibbles
		// directly. We don't error here: a mismatched nibble on read is a
		// caller concern (repacking recomputes it regardless), not a
		// reason to refuse parsing an otherwise valid archive.
		_ = nibbles
	}

	for i := 0; i < NumStreams; i++ {
		off := 0x20 + i*4
		e.CompressedSize[i] = engine.Uint32(data[off : off+4])
	}

	for i := 0; i < NumStreams; i++ {
		off := 0x30 + i*4
		e.Offset[i] = engine.Uint32(data[off : off+4])
	}

	// data[0x40:0x44] is the reserved import offset, discarded on read.
	e.ImportCount = engine.Uint16(data[0x48:0x4A])
	// data[0x4A] is reserved.
	e.StreamIndex = data[0x4B]
	// data[0x4C:0x50] is the trailing reserved word, discarded on read.

	return e, nil
}

// Bytes encodes the entry into a new EntrySize-byte record. Reserved
// fields (the two hashes, the import offset, and the trailing word) are
// always written as zero, matching the archive's re-emission rule.
func (e ResourceEntry) Bytes() []byte {
	b := make([]byte, EntrySize)
	engine := endian.GetLittleEndianEngine()

	copy(b[0:4], e.Identity[:])
	b[4] = e.CountBlock
	b[6] = e.Count
	b[7] = e.IsIDInteger

	nibbles := format.Nibbles(e.TypeID)
	for i := 0; i < NumStreams; i++ {
		off := 0x10 + i*4
		packed := (e.UncompressedSize[i] & 0x0FFFFFFF) | (uint32(nibbles[i]) << 28)
		engine.PutUint32(b[off:off+4], packed)
	}

	for i := 0; i < NumStreams; i++ {
		off := 0x20 + i*4
		engine.PutUint32(b[off:off+4], e.CompressedSize[i])
	}

	for i := 0; i < NumStreams; i++ {
		off := 0x30 + i*4
		engine.PutUint32(b[off:off+4], e.Offset[i])
	}

	engine.PutUint32(b[0x44:0x48], uint32(e.TypeID))
	engine.PutUint16(b[0x48:0x4A], e.ImportCount)
	b[0x4B] = e.StreamIndex

	return b
}

// UsesSecondStream reports whether this entry's type carries a stream 1
// payload (textures only — metadata sidecar plus pixel payload).
func (e ResourceEntry) UsesSecondStream() bool {
	return e.TypeID == format.ResourceTexture
}
