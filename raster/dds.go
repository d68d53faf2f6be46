// Package raster reads the block-compressed pixel container (a
// DDS-style file: fixed 128-byte header, FOURCC at 0x54, raw
// block-compressed bytes from 0x80) and computes the arithmetic
// relating pixel dimensions, block format, and on-disk payload size.
package raster

import (
	"os"

	"github.com/nfshpr-tools/bundlekit/endian"
	"github.com/nfshpr-tools/bundlekit/errs"
	"github.com/nfshpr-tools/bundlekit/format"
)

const (
	// HeaderSize is the fixed DDS header length; the pixel payload starts immediately after.
	HeaderSize = 0x80

	fourCCOffset = 0x54
	heightOffset = 0x0C
	widthOffset  = 0x10
)

// HeaderInfo exposes the header fields the pipeline needs to validate a
// block-compressed source: its pixel dimensions and its FOURCC tag.
type HeaderInfo struct {
	Width, Height int
	FourCC        string
}

// ReadHeaderInfo reads a DDS container's width, height, and FOURCC
// without touching its pixel payload.
func ReadHeaderInfo(data []byte) (HeaderInfo, error) {
	if len(data) < HeaderSize {
		return HeaderInfo{}, errs.ErrTruncatedInput
	}

	if string(data[0:4]) != "DDS " {
		return HeaderInfo{}, errs.ErrUnsupportedImageFormat
	}

	engine := endian.GetLittleEndianEngine()

	return HeaderInfo{
		Height: int(engine.Uint32(data[heightOffset : heightOffset+4])),
		Width:  int(engine.Uint32(data[widthOffset : widthOffset+4])),
		FourCC: string(data[fourCCOffset : fourCCOffset+4]),
	}, nil
}

// ReadPayload reads a DDS-style file at path and returns its FOURCC tag
// and its raw pixel payload (the bytes from HeaderSize onward).
func ReadPayload(path string) (fourcc string, payload []byte, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	info, err := ReadHeaderInfo(data)
	if err != nil {
		return "", nil, err
	}

	return info.FourCC, data[HeaderSize:], nil
}

// ExpectedPayloadSize returns the byte length a WxH block-compressed
// payload must have under format f: the pixel grid is covered by
// ceil(W/4) * ceil(H/4) blocks, each BytesPerBlock(f) bytes.
func ExpectedPayloadSize(w, h int, f format.TextureFormat) int64 {
	blocksWide := (w + 3) / 4
	blocksHigh := (h + 3) / 4
	return int64(blocksWide) * int64(blocksHigh) * int64(f.BytesPerBlock())
}

// ValidatePayloadSize reports whether actual is at least 90% of
// ExpectedPayloadSize(w, h, f), along with the ratio actual/expected.
// A false result is not by itself fatal — callers decide whether to
// treat an undersized payload as an error.
func ValidatePayloadSize(actual int64, w, h int, f format.TextureFormat) (ok bool, ratio float64) {
	expected := ExpectedPayloadSize(w, h, f)
	if expected == 0 {
		return actual == 0, 0
	}

	ratio = float64(actual) / float64(expected)
	return ratio >= 0.9, ratio
}
