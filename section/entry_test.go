package section

import (
	"testing"

	"github.com/nfshpr-tools/bundlekit/endian"
	"github.com/nfshpr-tools/bundlekit/format"
	"github.com/stretchr/testify/require"
)

func TestResourceEntryRoundTrip(t *testing.T) {
	e := ResourceEntry{
		Identity:    [4]byte{0xDE, 0xAD, 0xBE, 0xEF},
		CountBlock:  1,
		Count:       2,
		IsIDInteger: 1,
		TypeID:      format.ResourceTexture,
		UncompressedSize: [NumStreams]uint32{1024, 2048, 0, 0},
		CompressedSize:   [NumStreams]uint32{1024, 2048, 0, 0},
		Offset:           [NumStreams]uint32{0, 0x10, 0, 0},
		ImportCount:      3,
		StreamIndex:      1,
	}

	b := e.Bytes()
	require.Len(t, b, EntrySize)

	got, err := ParseResourceEntry(b)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestResourceEntryNibblePacking(t *testing.T) {
	e := ResourceEntry{TypeID: format.ResourceTexture, UncompressedSize: [NumStreams]uint32{100, 200, 0, 0}}
	b := e.Bytes()

	engine := endian.GetLittleEndianEngine()
	raw0 := engine.Uint32(b[0x10:0x14])
	require.Equal(t, uint32(0x3), raw0>>28)
	require.Equal(t, uint32(100), raw0&0x0FFFFFFF)

	raw1 := engine.Uint32(b[0x14:0x18])
	require.Equal(t, uint32(0x4), raw1>>28)
	require.Equal(t, uint32(200), raw1&0x0FFFFFFF)
}

func TestResourceEntryTruncated(t *testing.T) {
	_, err := ParseResourceEntry(make([]byte, EntrySize-1))
	require.Error(t, err)
}

func TestResourceEntryUsesSecondStream(t *testing.T) {
	require.True(t, ResourceEntry{TypeID: format.ResourceTexture}.UsesSecondStream())
	require.False(t, ResourceEntry{TypeID: format.ResourceMaterial}.UsesSecondStream())
}
