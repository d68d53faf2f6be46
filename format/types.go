// Package format defines the small fixed enums shared by every bundlekit
// codec: resource type IDs, their per-type alignment nibbles, and the
// texture pixel formats the pipeline selects between.
package format

import "fmt"

// ResourceType identifies the kind of payload a resource record carries.
// Values are bit-exact with the archive's on-disk type field; Material
// and Shader payloads are treated as opaque byte runs by every component
// here — only Texture resources carry a second stream.
type ResourceType uint32

const (
	ResourceTexture             ResourceType = 1
	ResourceMaterial            ResourceType = 2
	ResourceVertexDescriptor    ResourceType = 3
	ResourceVertexProgramState  ResourceType = 4
	ResourceRenderable          ResourceType = 5
	ResourceMaterialState       ResourceType = 6
	ResourceSamplerState        ResourceType = 7
	ResourceShaderProgramBuffer ResourceType = 8
)

var typeNames = map[ResourceType]string{
	ResourceTexture:             "Texture",
	ResourceMaterial:            "Material",
	ResourceVertexDescriptor:    "VertexDescriptor",
	ResourceVertexProgramState:  "VertexProgramState",
	ResourceRenderable:          "Renderable",
	ResourceMaterialState:       "MaterialState",
	ResourceSamplerState:        "SamplerState",
	ResourceShaderProgramBuffer: "ShaderProgramBuffer",
}

// String returns the resource type's canonical name, or its hex value if unknown.
func (t ResourceType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("Unknown(0x%08X)", uint32(t))
}

// DirName returns the per-type subdirectory name a bundle stores this
// resource's .dat files under. Unknown type IDs fall back to their
// 8-digit hex representation, matching the original tool's behavior for
// resource types it didn't have a name table entry for.
func (t ResourceType) DirName() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("%08X", uint32(t))
}

// nibbleTable holds the per-type alignment nibbles OR'd into the top 4
// bits of each uncompressed_size field. Order: stream 0..3. Must be
// reproduced bit-exact; do not derive these from anything else.
var nibbleTable = map[ResourceType][4]uint8{
	ResourceTexture:             {0x3, 0x4, 0x0, 0x0},
	ResourceMaterial:            {0x0, 0x0, 0x0, 0x0},
	ResourceVertexDescriptor:    {0x3, 0x0, 0x0, 0x0},
	ResourceVertexProgramState:  {0x3, 0x0, 0x0, 0x0},
	ResourceRenderable:          {0x4, 0x4, 0x0, 0x0},
	ResourceMaterialState:       {0x0, 0x0, 0x0, 0x0},
	ResourceSamplerState:        {0x3, 0x0, 0x0, 0x0},
	ResourceShaderProgramBuffer: {0x4, 0x2, 0x0, 0x0},
}

var defaultNibbles = [4]uint8{0x4, 0x0, 0x0, 0x0}

// Nibbles returns the static per-stream alignment nibble 4-tuple for typ,
// falling back to the default row for unrecognized type IDs.
func Nibbles(typ ResourceType) [4]uint8 {
	if n, ok := nibbleTable[typ]; ok {
		return n
	}

	return defaultNibbles
}

// TextureFormat is the compressed pixel format selected for a texture payload.
type TextureFormat uint8

const (
	TextureFormatUnknown TextureFormat = iota
	TextureFormatBC1                   // DXT1: opaque or 1-bit alpha, 8 bytes/block
	TextureFormatBC2                   // DXT3: selected only when adopted from a source or sibling DDS, 16 bytes/block
	TextureFormatBC3                   // DXT5: full alpha, 16 bytes/block
	TextureFormatBC7                   // high quality RGBA, 16 bytes/block
)

// FourCC returns the 4-byte ASCII tag used inside a DDS-style raster container.
func (f TextureFormat) FourCC() string {
	switch f {
	case TextureFormatBC1:
		return "DXT1"
	case TextureFormatBC2:
		return "DXT3"
	case TextureFormatBC3:
		return "DXT5"
	case TextureFormatBC7:
		return "BC7 "
	default:
		return ""
	}
}

// CompressorName returns the -f argument value the external block
// compressor expects for this format.
func (f TextureFormat) CompressorName() string {
	switch f {
	case TextureFormatBC1:
		return "BC1_UNORM"
	case TextureFormatBC2:
		return "BC2_UNORM"
	case TextureFormatBC3:
		return "BC3_UNORM"
	case TextureFormatBC7:
		return "BC7_UNORM"
	default:
		return ""
	}
}

// BytesPerBlock returns the compressed size, in bytes, of one 4x4 pixel block.
func (f TextureFormat) BytesPerBlock() int {
	switch f {
	case TextureFormatBC1:
		return 8
	case TextureFormatBC2, TextureFormatBC3, TextureFormatBC7:
		return 16
	default:
		return 0
	}
}

// TextureFormatFromFourCC maps a DDS FOURCC tag to a TextureFormat.
func TextureFormatFromFourCC(fourcc string) TextureFormat {
	switch fourcc {
	case "DXT1":
		return TextureFormatBC1
	case "DXT3":
		return TextureFormatBC2
	case "DXT5":
		return TextureFormatBC3
	case "BC7 ", "BC7U", "BC7L":
		return TextureFormatBC7
	default:
		return TextureFormatUnknown
	}
}

func (f TextureFormat) String() string {
	if name := f.FourCC(); name != "" {
		return name
	}

	return "Unknown"
}
