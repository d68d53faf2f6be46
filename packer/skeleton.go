package packer

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/nfshpr-tools/bundlekit/errs"
	"github.com/nfshpr-tools/bundlekit/section"
)

// skeleton is everything read from an archive's IDs file that the
// packer needs to reproduce byte-for-byte: the header, the entry
// table, and the two free-form regions (notes, debug) that sit between
// the header and the entry table on disk.
type skeleton struct {
	Header  section.ArchiveHeader
	Entries []section.ResourceEntry
	Notes   []byte
	Debug   []byte
}

// findIDsFile locates a bundle's identity file, trying
// IDs_<bundlename>.BIN before falling back to the generic IDs.BIN,
// matching the original tool's resolution order.
func findIDsFile(bundleDir string) (string, error) {
	name := filepath.Base(bundleDir)

	candidates := []string{
		filepath.Join(bundleDir, "IDs_"+name+".BIN"),
		filepath.Join(bundleDir, "IDs.BIN"),
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}

	return "", errs.ErrMissingResourcePayload
}

// readSkeleton reads and parses a bundle's IDs file into a skeleton.
// Notes and debug data are read verbatim from the region between the
// header and the entry table; debug data has its trailing run of zero
// bytes trimmed with bytes.TrimRight, which only ever touches the
// trailing run and leaves interior zero bytes untouched.
func readSkeleton(idsPath string) (skeleton, error) {
	data, err := os.ReadFile(idsPath)
	if err != nil {
		return skeleton{}, err
	}

	header, err := section.ParseArchiveHeader(data)
	if err != nil {
		return skeleton{}, err
	}

	var notes, debug []byte

	if header.DebugDataOffset < header.ResourceEntriesOffset {
		notes = cloneRegion(data, section.HeaderSize, int(header.DebugDataOffset))
		debug = cloneRegion(data, int(header.DebugDataOffset), int(header.ResourceEntriesOffset))
		debug = bytes.TrimRight(debug, "\x00")
	} else {
		notes = cloneRegion(data, section.HeaderSize, int(header.ResourceEntriesOffset))
		debug = nil
	}

	if !header.HasDebugInfo() {
		debug = nil
	}

	entries := make([]section.ResourceEntry, 0, header.ResourceEntriesCount)
	for i := uint32(0); i < header.ResourceEntriesCount; i++ {
		start := int(header.ResourceEntriesOffset) + int(i)*section.EntrySize
		end := start + section.EntrySize
		if end > len(data) {
			return skeleton{}, errs.ErrInvalidEntrySize
		}

		entry, err := section.ParseResourceEntry(data[start:end])
		if err != nil {
			return skeleton{}, err
		}
		entries = append(entries, entry)
	}

	return skeleton{Header: header, Entries: entries, Notes: notes, Debug: debug}, nil
}

func cloneRegion(data []byte, start, end int) []byte {
	if start < 0 || end > len(data) || start > end {
		return nil
	}
	out := make([]byte, end-start)
	copy(out, data[start:end])
	return out
}
