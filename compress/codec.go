package compress

import "github.com/nfshpr-tools/bundlekit/section"

// Compressor compresses a single stream's bytes for on-disk storage.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// ShouldCompress reports whether flags selects zlib compression for
// every stream in the archive.
func ShouldCompress(flags uint32) bool {
	return section.FlagsImplyCompression(flags)
}

// CreateCodec returns the codec an archive with these flags should use
// to write its streams: ZlibCodec if ShouldCompress(flags), NoOpCodec
// otherwise.
func CreateCodec(flags uint32) Codec {
	if ShouldCompress(flags) {
		return NewZlibCodec()
	}

	return NewNoOpCodec()
}
