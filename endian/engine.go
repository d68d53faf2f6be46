// Package endian provides the byte-order abstraction used to encode and
// decode bundlekit's fixed-layout binary structures.
//
// The archive, entry, and sidecar formats are all fixed little-endian (the
// game engine never ships a big-endian PC build), so this package exists
// only to give the section/raster codecs a single narrow seam — every
// Parse/Bytes method obtains its EndianEngine from GetLittleEndianEngine
// rather than calling encoding/binary directly — instead of hardcoding
// binary.LittleEndian at every call site.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface, satisfied by binary.LittleEndian without any
// wrapper type.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by every
// on-disk structure this module defines.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
