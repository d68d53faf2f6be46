package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// NewDigest returns a streaming xxHash64 digest for callers that need
// to hash several pieces of binary data into one fingerprint without
// concatenating them first.
func NewDigest() *xxhash.Digest {
	return xxhash.New()
}
