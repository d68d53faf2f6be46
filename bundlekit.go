// Package bundlekit provides a small modding toolkit for a racing
// game's decal and livery texture asset bundles: reading an archive's
// header and entry table, converting an artist-exported image into a
// block-compressed texture payload, and repacking an unpacked bundle
// directory back into a byte-compatible archive.
//
// # Core Features
//
//   - Fixed little-endian binary archive codec (header, entry table, two
//     texture metadata sidecar dialects)
//   - Block-compressed pixel container arithmetic (BC1/BC3/BC7 payload
//     sizing and validation)
//   - An image conversion pipeline driving an external block-compressor
//     tool, with format selection and dimension normalization
//   - A bundle packer that reproduces an archive's original layout rules
//     byte-for-byte from its unpacked resource files
//
// # Package Structure
//
// This package provides convenient top-level wrappers around section,
// texture, and packer. For fine-grained control — custom sidecar
// handling, a non-default block compressor, or direct entry table
// manipulation — use those packages directly.
package bundlekit

import (
	"context"
	"os"

	"github.com/nfshpr-tools/bundlekit/errs"
	"github.com/nfshpr-tools/bundlekit/internal/hash"
	"github.com/nfshpr-tools/bundlekit/packer"
	"github.com/nfshpr-tools/bundlekit/section"
	"github.com/nfshpr-tools/bundlekit/texture"
)

// ArchiveInfo is an archive's decoded header and entry table, the
// identity information every other operation in this module is built
// from.
type ArchiveInfo struct {
	Header  section.ArchiveHeader
	Entries []section.ResourceEntry
}

// ReadArchiveInfo reads and parses an archive's (or an exported IDs.BIN
// identity file's) header and entry table from path. It does not read
// either data block — use this to inspect an archive's resource list
// before deciding what to unpack or repack.
//
// Example:
//
//	info, err := bundlekit.ReadArchiveInfo("Raw/TEX_demo/IDs.BIN")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range info.Entries {
//	    fmt.Println(e.TypeID, e.Identity)
//	}
func ReadArchiveInfo(path string) (ArchiveInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ArchiveInfo{}, err
	}

	header, err := section.ParseArchiveHeader(data)
	if err != nil {
		return ArchiveInfo{}, err
	}

	entries := make([]section.ResourceEntry, 0, header.ResourceEntriesCount)
	for i := uint32(0); i < header.ResourceEntriesCount; i++ {
		start := int(header.ResourceEntriesOffset) + int(i)*section.EntrySize
		end := start + section.EntrySize
		if end > len(data) {
			return ArchiveInfo{}, errs.ErrInvalidEntrySize
		}

		entry, err := section.ParseResourceEntry(data[start:end])
		if err != nil {
			return ArchiveInfo{}, err
		}
		entries = append(entries, entry)
	}

	return ArchiveInfo{Header: header, Entries: entries}, nil
}

// Fingerprint returns info's structural identity hash, the same value
// section.Fingerprint computes directly. Two archives with the same
// fingerprint agree on their header fields other than the data block
// offsets and on each entry's identity, type and count fields; stream
// sizes, offsets and data block contents are not compared — useful for
// confirming a repack reproduced its source's skeleton unchanged.
func (info ArchiveInfo) Fingerprint() uint64 {
	return section.Fingerprint(info.Header, info.Entries)
}

// PackBundle repacks the unpacked bundle directory at bundleDir into a
// byte-compatible archive under outputDir, returning the written
// file's path. This is a thin wrapper over packer.Pack; use that
// package directly for more control over the process.
func PackBundle(bundleDir, outputDir string) (string, error) {
	return packer.Pack(packer.Options{BundleDir: bundleDir, OutputDir: outputDir})
}

// NewBlockCompressor returns a texture.BlockCompressor backed by the
// external block-compressor binary at toolPath.
func NewBlockCompressor(toolPath string) texture.BlockCompressor {
	return texture.NewExecCompressor(toolPath)
}

// HashName returns the xxHash64 of name, a short correlation id callers
// can use to tag a bundle or resource name in their own logging without
// carrying the full string around.
func HashName(name string) uint64 {
	return hash.ID(name)
}

// ConvertTexture runs the full image conversion pipeline for one
// texture resource: it decodes in.SourceImagePath, selects a
// block-compressed format, normalizes its dimensions if needed,
// invokes bc to produce the compressed payload, and writes the
// resulting <base>_texture.dat file next to in.SidecarPath. This is a
// thin wrapper over texture.ConvertImageToPayload.
func ConvertTexture(ctx context.Context, in texture.PipelineInput, bc texture.BlockCompressor) (texture.PipelineResult, error) {
	return texture.ConvertImageToPayload(ctx, in, bc)
}
