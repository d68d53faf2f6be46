// Package errs collects the sentinel errors returned throughout bundlekit.
//
// Every codec and pipeline package imports this package the same way:
// callers wrap a sentinel with context via fmt.Errorf("...: %w", errs.ErrX)
// and check it with errors.Is. No package defines its own ad-hoc error
// values.
package errs

import "errors"

var (
	// ErrBadMagic is returned when an archive's magic bytes are not "bnd2".
	ErrBadMagic = errors.New("bundlekit: bad archive magic")

	// ErrUnsupportedPlatform is returned when an archive's platform field is not PC (1).
	ErrUnsupportedPlatform = errors.New("bundlekit: unsupported platform, PC archives only")

	// ErrTruncatedInput is returned when a read runs past the end of the supplied buffer.
	ErrTruncatedInput = errors.New("bundlekit: truncated input")

	// ErrUnknownSidecarDialect is returned when a sidecar's leading bytes match neither dialect.
	ErrUnknownSidecarDialect = errors.New("bundlekit: unknown sidecar dialect")

	// ErrMissingResourcePayload is returned when a bundle directory is missing an entry's .dat file.
	ErrMissingResourcePayload = errors.New("bundlekit: missing resource payload file")

	// ErrToolNotFound is returned when the external block-compressor binary cannot be located.
	ErrToolNotFound = errors.New("bundlekit: block compressor tool not found")

	// ErrToolFailed is returned when the external block-compressor exits non-zero.
	ErrToolFailed = errors.New("bundlekit: block compressor tool failed")

	// ErrCompressorOutputTooSmall is returned when a produced payload is under 90% of its expected size.
	ErrCompressorOutputTooSmall = errors.New("bundlekit: compressor output smaller than expected")

	// ErrImageDecodeFailed is returned when a source image cannot be decoded.
	ErrImageDecodeFailed = errors.New("bundlekit: image decode failed")

	// ErrInvalidHeaderSize is returned when a byte slice is too short to hold an archive header.
	ErrInvalidHeaderSize = errors.New("bundlekit: invalid header size")

	// ErrInvalidEntrySize is returned when a byte slice is too short to hold a resource entry.
	ErrInvalidEntrySize = errors.New("bundlekit: invalid resource entry size")

	// ErrUnsupportedImageFormat is returned when a source image's extension has no registered decoder.
	ErrUnsupportedImageFormat = errors.New("bundlekit: unsupported source image format")
)
