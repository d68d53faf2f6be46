// Package compress provides the per-stream codec the packer applies
// when an archive's flags select compression.
//
// # Overview
//
// The archive format does not offer a choice of algorithm the way a
// general-purpose compression layer would: a fixed enumerated set of
// flag values selects zlib (level 9) for every stream; any flag value
// outside that set means the stream is stored verbatim. ShouldCompress
// implements that membership test, and CreateCodec returns the matching
// Codec — ZlibCodec or NoOpCodec — so the packer never branches on
// flags itself.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// ZlibCodec wraps github.com/klauspost/compress/zlib, a drop-in,
// allocation-lighter implementation of the standard zlib wire format;
// its output is byte-for-byte a valid zlib stream, which is what the
// game engine's reader expects.
package compress
