package section

import (
	"github.com/nfshpr-tools/bundlekit/endian"
	"github.com/nfshpr-tools/bundlekit/internal/hash"
)

// Fingerprint hashes an archive's identity skeleton so callers can log or
// compare two archives' structural identity without a full byte diff. It
// covers every header field except DataBlockOffset, and each entry's
// identity, type, count_block, count, is_id_integer and stream index; the
// fields the packer recomputes on every repack (data block offsets,
// stream sizes and offsets) and ImportCount are not hashed.
func Fingerprint(h ArchiveHeader, entries []ResourceEntry) uint64 {
	digest := hash.NewDigest()

	engine := endian.GetLittleEndianEngine()
	var word [4]byte

	engine.PutUint32(word[:], h.Version)
	digest.Write(word[:])
	engine.PutUint32(word[:], h.Platform)
	digest.Write(word[:])
	engine.PutUint32(word[:], h.DebugDataOffset)
	digest.Write(word[:])
	engine.PutUint32(word[:], h.ResourceEntriesCount)
	digest.Write(word[:])
	engine.PutUint32(word[:], h.ResourceEntriesOffset)
	digest.Write(word[:])
	engine.PutUint32(word[:], h.Flags)
	digest.Write(word[:])
	engine.PutUint32(word[:], h.Pad)
	digest.Write(word[:])

	for _, e := range entries {
		digest.Write(e.Identity[:])
		engine.PutUint32(word[:], uint32(e.TypeID))
		digest.Write(word[:])
		digest.Write([]byte{e.CountBlock, e.Count, e.IsIDInteger, e.StreamIndex})
	}

	return digest.Sum64()
}
