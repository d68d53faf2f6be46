package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNibbles(t *testing.T) {
	cases := []struct {
		typ  ResourceType
		want [4]uint8
	}{
		{ResourceTexture, [4]uint8{0x3, 0x4, 0, 0}},
		{ResourceMaterial, [4]uint8{0, 0, 0, 0}},
		{ResourceVertexDescriptor, [4]uint8{0x3, 0, 0, 0}},
		{ResourceVertexProgramState, [4]uint8{0x3, 0, 0, 0}},
		{ResourceRenderable, [4]uint8{0x4, 0x4, 0, 0}},
		{ResourceMaterialState, [4]uint8{0, 0, 0, 0}},
		{ResourceSamplerState, [4]uint8{0x3, 0, 0, 0}},
		{ResourceShaderProgramBuffer, [4]uint8{0x4, 0x2, 0, 0}},
		{ResourceType(0xFF), [4]uint8{0x4, 0, 0, 0}}, // default row
	}

	for _, c := range cases {
		require.Equal(t, c.want, Nibbles(c.typ), "type %v", c.typ)
	}
}

func TestResourceTypeDirName(t *testing.T) {
	require.Equal(t, "Texture", ResourceTexture.DirName())
	require.Equal(t, "Renderable", ResourceRenderable.DirName())
	require.Equal(t, "00000009", ResourceType(9).DirName())
}

func TestTextureFormatRoundTrip(t *testing.T) {
	require.Equal(t, TextureFormatBC1, TextureFormatFromFourCC("DXT1"))
	require.Equal(t, TextureFormatBC3, TextureFormatFromFourCC("DXT5"))
	require.Equal(t, TextureFormatUnknown, TextureFormatFromFourCC("ZZZZ"))

	require.Equal(t, 8, TextureFormatBC1.BytesPerBlock())
	require.Equal(t, 16, TextureFormatBC3.BytesPerBlock())
	require.Equal(t, 16, TextureFormatBC7.BytesPerBlock())

	require.Equal(t, "BC1_UNORM", TextureFormatBC1.CompressorName())
	require.Equal(t, "BC3_UNORM", TextureFormatBC3.CompressorName())
}
