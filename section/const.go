package section

// Magic is the 4-byte tag every archive begins with.
const Magic = "bnd2"

// PlatformPC is the only platform value this module accepts, on both read and write.
const PlatformPC = 1

// Fixed sizes and block-alignment constants.
const (
	HeaderSize      = 0x30 // ArchiveHeader is fixed at this size
	EntrySize       = 0x50 // ResourceEntry is fixed at this size
	NumDataBlocks   = 4    // data_block_offset[0..3]
	NumStreams      = 4    // up to four per-entry streams
	Block0Alignment = 0x10 // stream 0 payloads padded to this boundary within block 0
	Block1Alignment = 0x80 // stream 1 payloads padded to this boundary within block 1, and block starts

	// DebugInfoFlagBit is the flags bit (bit 3) that gates the debug region's presence.
	DebugInfoFlagBit = 0x8
)

// compressionFlags is the enumerated set of flag values that imply
// per-stream zlib compression. Any value outside this set means "no
// compression" — the bits are never interpreted individually.
var compressionFlags = map[uint32]struct{}{
	0x1:  {},
	0x7:  {},
	0x9:  {},
	0xF:  {},
	0x11: {},
	0x19: {},
	0x21: {},
	0x27: {},
	0x29: {},
	0x2F: {},
}

// FlagsImplyCompression reports whether flags selects per-stream zlib
// compression under the archive's enumerated flag-value membership test.
func FlagsImplyCompression(flags uint32) bool {
	_, ok := compressionFlags[flags]
	return ok
}

// Padding returns the number of zero-bytes needed to round length up to
// the next multiple of alignment. Returns 0 when length is already
// aligned.
func Padding(length, alignment int) int {
	if alignment <= 0 {
		return 0
	}

	rem := length % alignment
	if rem == 0 {
		return 0
	}

	return alignment - rem
}

// AlignUp rounds length up to the next multiple of alignment.
func AlignUp(length, alignment int) int {
	return length + Padding(length, alignment)
}
