// Package packer re-emits a bundle archive from its unpacked resource
// files: it reads an existing archive's identity skeleton (header,
// entry table, notes, debug region), reads each entry's resource
// file(s) from the bundle directory, compresses them per the archive's
// flags, and writes a byte-compatible archive with recomputed offsets.
package packer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nfshpr-tools/bundlekit/compress"
	"github.com/nfshpr-tools/bundlekit/errs"
	"github.com/nfshpr-tools/bundlekit/internal/pool"
	"github.com/nfshpr-tools/bundlekit/section"
)

// Options configures one Pack call.
type Options struct {
	// BundleDir is the unpacked bundle's root: it must contain an
	// IDs.BIN or IDs_<name>.BIN identity file and a per-type
	// subdirectory (Texture, Material, ...) holding each entry's .dat
	// file(s).
	BundleDir string

	// OutputDir is the directory the repacked archive is written into,
	// as <bundle name>.BIN. Created if it doesn't exist.
	OutputDir string
}

// resourceFiles holds one entry's resolved file contents plus the
// computed on-disk layout the packer fills in as it accumulates data
// blocks.
type resourceFiles struct {
	uncompressedSizes [section.NumStreams]uint32
	compressedSizes   [section.NumStreams]uint32
	offsets           [section.NumStreams]uint32
}

// Pack reads opts.BundleDir's identity skeleton and resource files and
// writes a repacked archive into opts.OutputDir, returning its path.
func Pack(opts Options) (string, error) {
	idsPath, err := findIDsFile(opts.BundleDir)
	if err != nil {
		return "", err
	}

	skel, err := readSkeleton(idsPath)
	if err != nil {
		return "", fmt.Errorf("reading skeleton from %s: %w", idsPath, err)
	}

	codec := compress.CreateCodec(skel.Header.Flags)

	block0 := pool.GetBlock0Buffer()
	defer pool.PutBlock0Buffer(block0)

	block1 := pool.GetBlock1Buffer()
	defer pool.PutBlock1Buffer(block1)

	resources := make([]resourceFiles, 0, len(skel.Entries))

	for _, entry := range skel.Entries {
		filename := section.BuildResourceFilename(entry.Identity, entry.CountBlock, entry.Count)
		resourceDir := filepath.Join(opts.BundleDir, entry.TypeID.DirName())
		resourcePath := filepath.Join(resourceDir, filename+".dat")

		resource0, err := os.ReadFile(resourcePath)
		if err != nil {
			return "", fmt.Errorf("%w: %s", errs.ErrMissingResourcePayload, resourcePath)
		}

		disk0, err := codec.Compress(resource0)
		if err != nil {
			return "", fmt.Errorf("compressing %s: %w", resourcePath, err)
		}

		var resource1, disk1 []byte
		if entry.UsesSecondStream() {
			bodyPath := filepath.Join(resourceDir, filename+section.TexturePayloadSuffix+".dat")
			if data, err := os.ReadFile(bodyPath); err == nil {
				resource1 = data
				disk1, err = codec.Compress(resource1)
				if err != nil {
					return "", fmt.Errorf("compressing %s: %w", bodyPath, err)
				}
			}
		}

		var res resourceFiles
		res.uncompressedSizes[0] = uint32(len(resource0))
		res.uncompressedSizes[1] = uint32(len(resource1))
		res.compressedSizes[0] = uint32(len(disk0))
		res.compressedSizes[1] = uint32(len(disk1))

		res.offsets[0] = uint32(block0.AppendPayload(disk0))
		block0.AppendZeroPadding(section.Padding(len(disk0), section.Block0Alignment))

		if len(disk1) > 0 {
			res.offsets[1] = uint32(block1.AppendPayload(disk1))
			block1.AppendZeroPadding(section.Padding(len(disk1), section.Block1Alignment))
		}

		resources = append(resources, res)
	}

	idsTableSize := int(skel.Header.ResourceEntriesOffset) + len(skel.Entries)*section.EntrySize

	header := skel.Header
	header.DataBlockOffset[0] = uint32(idsTableSize)
	header.DataBlockOffset[1] = header.DataBlockOffset[0] + uint32(block0.Len())

	paddingBeforeBlock1 := section.Padding(int(header.DataBlockOffset[1]), section.Block1Alignment)
	header.DataBlockOffset[1] += uint32(paddingBeforeBlock1)

	header.DataBlockOffset[2] = header.DataBlockOffset[1] + uint32(block1.Len())
	paddingAfterBlock1 := section.Padding(int(header.DataBlockOffset[2]), section.Block1Alignment)
	header.DataBlockOffset[3] = header.DataBlockOffset[2]

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", err
	}

	bundleName := filepath.Base(opts.BundleDir)
	outputPath := filepath.Join(opts.OutputDir, bundleName+".BIN")

	out, err := os.Create(outputPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := out.Write(header.Bytes()); err != nil {
		return "", err
	}
	if _, err := out.Write(skel.Notes); err != nil {
		return "", err
	}

	if header.HasDebugInfo() && len(skel.Debug) > 0 {
		if _, err := out.Write(skel.Debug); err != nil {
			return "", err
		}
		pad := make([]byte, section.Padding(len(skel.Debug), section.Block0Alignment))
		if _, err := out.Write(pad); err != nil {
			return "", err
		}
	}

	for i, entry := range skel.Entries {
		res := resources[i]
		entry.UncompressedSize = res.uncompressedSizes
		entry.CompressedSize = res.compressedSizes
		entry.Offset = res.offsets

		if _, err := out.Write(entry.Bytes()); err != nil {
			return "", err
		}
	}

	if _, err := block0.WriteTo(out); err != nil {
		return "", err
	}
	if _, err := out.Write(make([]byte, paddingBeforeBlock1)); err != nil {
		return "", err
	}
	if _, err := block1.WriteTo(out); err != nil {
		return "", err
	}
	if _, err := out.Write(make([]byte, paddingAfterBlock1)); err != nil {
		return "", err
	}

	return outputPath, nil
}
