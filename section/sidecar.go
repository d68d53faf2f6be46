package section

import (
	"bytes"

	"github.com/nfshpr-tools/bundlekit/endian"
	"github.com/nfshpr-tools/bundlekit/errs"
	"github.com/nfshpr-tools/bundlekit/format"
)

// Sidecar edits a texture metadata file's format and dimension fields in
// place without disturbing any other byte. The two dialects differ only
// in where those fields live; DetectSidecar picks the right one from the
// file's leading bytes.
type Sidecar interface {
	// WriteFormat returns data with its format field set to f, or
	// errs.ErrUnsupportedImageFormat if f has no on-disk representation
	// in this dialect.
	WriteFormat(data []byte, f format.TextureFormat) ([]byte, error)

	// WriteDimensions returns data with its width/height fields set.
	WriteDimensions(data []byte, width, height uint16) []byte

	// Dimensions reads the current width/height fields.
	Dimensions(data []byte) (width, height uint16, err error)

	// Format reads the current format field, returning
	// format.TextureFormatUnknown if it doesn't match a known encoding.
	Format(data []byte) (format.TextureFormat, error)
}

var remasteredMagics = [][]byte{
	append(bytes.Repeat([]byte{0x00}, 12), 0x07),
	append(bytes.Repeat([]byte{0x00}, 12), 0x09),
}

var originalMagic = append(bytes.Repeat([]byte{0x00}, 8), 0x01)

// DetectSidecar identifies which dialect data's leading bytes match and
// returns the corresponding Sidecar. It returns errs.ErrUnknownSidecarDialect
// if neither pattern matches.
func DetectSidecar(data []byte) (Sidecar, error) {
	if len(data) >= 13 {
		for _, magic := range remasteredMagics {
			if bytes.Equal(data[:13], magic) {
				return remasteredSidecar{}, nil
			}
		}
	}

	if len(data) >= 9 && bytes.Equal(data[:9], originalMagic) {
		return originalSidecar{}, nil
	}

	return nil, errs.ErrUnknownSidecarDialect
}

// remasteredSidecar is the dialect whose leading 13 bytes are twelve
// zeros followed by 0x07 or 0x09.
type remasteredSidecar struct{}

const (
	remasteredFormatOffset = 0x2C
	remasteredWidthOffset  = 0x34
	remasteredHeightOffset = 0x36
)

func (remasteredSidecar) WriteFormat(data []byte, f format.TextureFormat) ([]byte, error) {
	out := append([]byte(nil), data...)

	var b byte
	switch f {
	case format.TextureFormatBC1:
		b = 0x47
	case format.TextureFormatBC3:
		b = 0x4D
	case format.TextureFormatBC7:
		b = 0x62
	default:
		return nil, errs.ErrUnsupportedImageFormat
	}

	if len(out) <= remasteredFormatOffset {
		return nil, errs.ErrTruncatedInput
	}
	out[remasteredFormatOffset] = b

	return out, nil
}

func (remasteredSidecar) WriteDimensions(data []byte, width, height uint16) []byte {
	out := append([]byte(nil), data...)
	engine := endian.GetLittleEndianEngine()
	engine.PutUint16(out[remasteredWidthOffset:remasteredWidthOffset+2], width)
	engine.PutUint16(out[remasteredHeightOffset:remasteredHeightOffset+2], height)
	return out
}

func (remasteredSidecar) Format(data []byte) (format.TextureFormat, error) {
	if len(data) <= remasteredFormatOffset {
		return format.TextureFormatUnknown, errs.ErrTruncatedInput
	}

	switch data[remasteredFormatOffset] {
	case 0x47:
		return format.TextureFormatBC1, nil
	case 0x4D:
		return format.TextureFormatBC3, nil
	case 0x62:
		return format.TextureFormatBC7, nil
	default:
		return format.TextureFormatUnknown, nil
	}
}

func (remasteredSidecar) Dimensions(data []byte) (uint16, uint16, error) {
	if len(data) < remasteredHeightOffset+2 {
		return 0, 0, errs.ErrTruncatedInput
	}
	engine := endian.GetLittleEndianEngine()
	w := engine.Uint16(data[remasteredWidthOffset : remasteredWidthOffset+2])
	h := engine.Uint16(data[remasteredHeightOffset : remasteredHeightOffset+2])
	return w, h, nil
}

// originalSidecar is the dialect whose leading 9 bytes are eight zeros
// followed by 0x01.
type originalSidecar struct{}

const (
	originalFormatOffset = 0xC
	originalWidthOffset   = 0x10
	originalHeightOffset  = 0x12
)

func (originalSidecar) WriteFormat(data []byte, f format.TextureFormat) ([]byte, error) {
	out := append([]byte(nil), data...)

	var tag string
	switch f {
	case format.TextureFormatBC1:
		tag = "DXT1"
	case format.TextureFormatBC3:
		tag = "DXT5"
	default:
		return nil, errs.ErrUnsupportedImageFormat
	}

	if len(out) < originalFormatOffset+4 {
		return nil, errs.ErrTruncatedInput
	}
	copy(out[originalFormatOffset:originalFormatOffset+4], tag)

	return out, nil
}

func (originalSidecar) WriteDimensions(data []byte, width, height uint16) []byte {
	out := append([]byte(nil), data...)
	engine := endian.GetLittleEndianEngine()
	engine.PutUint16(out[originalWidthOffset:originalWidthOffset+2], width)
	engine.PutUint16(out[originalHeightOffset:originalHeightOffset+2], height)
	return out
}

func (originalSidecar) Format(data []byte) (format.TextureFormat, error) {
	if len(data) < originalFormatOffset+4 {
		return format.TextureFormatUnknown, errs.ErrTruncatedInput
	}

	return format.TextureFormatFromFourCC(string(data[originalFormatOffset : originalFormatOffset+4])), nil
}

func (originalSidecar) Dimensions(data []byte) (uint16, uint16, error) {
	if len(data) < originalHeightOffset+2 {
		return 0, 0, errs.ErrTruncatedInput
	}
	engine := endian.GetLittleEndianEngine()
	w := engine.Uint16(data[originalWidthOffset : originalWidthOffset+2])
	h := engine.Uint16(data[originalHeightOffset : originalHeightOffset+2])
	return w, h, nil
}
