package texture

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/nfshpr-tools/bundlekit/endian"
	"github.com/nfshpr-tools/bundlekit/format"
	"github.com/nfshpr-tools/bundlekit/section"
	"github.com/stretchr/testify/require"
)

// fakeCompressor stands in for an external block-compressor: it writes
// a minimal but valid DDS container sized to match the requested format
// instead of shelling out.
type fakeCompressor struct {
	width, height int
	calls         int
}

func (f *fakeCompressor) Compress(ctx context.Context, pngPath, outDir string, tf format.TextureFormat) (string, error) {
	f.calls++

	img, err := decodePNGDims(pngPath)
	if err != nil {
		return "", err
	}

	out := filepath.Join(outDir, trimExt(filepath.Base(pngPath))+".dds")
	if err := writeDDSFixture(out, img.Dx(), img.Dy(), tf); err != nil {
		return "", err
	}

	return out, nil
}

func decodePNGDims(path string) (image.Rectangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Rectangle{}, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return image.Rectangle{}, err
	}
	return img.Bounds(), nil
}

func trimExt(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
	}
	return name
}

func writeDDSFixture(path string, w, h int, tf format.TextureFormat) error {
	header := make([]byte, 0x80)
	copy(header[0:4], "DDS ")
	engine := endian.GetLittleEndianEngine()
	engine.PutUint32(header[0x0C:0x10], uint32(h))
	engine.PutUint32(header[0x10:0x14], uint32(w))
	copy(header[0x54:0x58], tf.FourCC())

	blocksWide := (w + 3) / 4
	blocksHigh := (h + 3) / 4
	payload := make([]byte, blocksWide*blocksHigh*tf.BytesPerBlock())

	return os.WriteFile(path, append(header, payload...), 0o644)
}

func writeSourcePNG(t *testing.T, path string, w, h int, withAlpha bool) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint8(255)
			if withAlpha {
				a = uint8(x % 256)
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 50, B: 50, A: a})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, img))
}

func TestConvertImageToPayloadPowerOfTwoNoOp(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "decal.png")
	writeSourcePNG(t, srcPath, 64, 64, false)

	sidecarPath := filepath.Join(dir, "decal.dat")
	sidecar := originalFixtureData()
	require.NoError(t, os.WriteFile(sidecarPath, sidecar, 0o644))

	fc := &fakeCompressor{}
	result, err := ConvertImageToPayload(context.Background(), PipelineInput{
		SourceImagePath: srcPath,
		SidecarPath:     sidecarPath,
		ScratchDir:      dir,
	}, fc)

	require.NoError(t, err)
	require.Equal(t, 1, fc.calls)
	require.Equal(t, 64, result.Width)
	require.Equal(t, 64, result.Height)
	require.Empty(t, result.Warnings)
	require.FileExists(t, result.PayloadPath)

	payload, err := os.ReadFile(result.PayloadPath)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	for _, leftover := range []string{
		filepath.Join(dir, "decal_temp_clean.png"),
		filepath.Join(dir, "decal_temp_clean.dds"),
	} {
		_, statErr := os.Stat(leftover)
		require.True(t, os.IsNotExist(statErr), "expected scratch file %s to be cleaned up", leftover)
	}
}

func TestConvertImageToPayloadResamplesNonPowerOfTwo(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "banner.png")
	writeSourcePNG(t, srcPath, 100, 60, true)

	sidecarPath := filepath.Join(dir, "banner.dat")
	require.NoError(t, os.WriteFile(sidecarPath, originalFixtureData(), 0o644))

	fc := &fakeCompressor{}
	result, err := ConvertImageToPayload(context.Background(), PipelineInput{
		SourceImagePath: srcPath,
		SidecarPath:     sidecarPath,
		ScratchDir:      dir,
	}, fc)

	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
	require.Equal(t, 128, result.Width)
	require.Equal(t, 64, result.Height)
	require.Equal(t, format.TextureFormatBC3, result.Format)

	updated, err := os.ReadFile(sidecarPath)
	require.NoError(t, err)
	sidecar, err := section.DetectSidecar(updated)
	require.NoError(t, err)
	w, h, err := sidecar.Dimensions(updated)
	require.NoError(t, err)
	require.EqualValues(t, result.Width, w)
	require.EqualValues(t, result.Height, h)
}

func TestConvertImageToPayloadUpdatesSidecarFormat(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "decal.png")
	writeSourcePNG(t, srcPath, 32, 32, true)

	sidecarPath := filepath.Join(dir, "decal.dat")
	require.NoError(t, os.WriteFile(sidecarPath, originalFixtureData(), 0o644))

	fc := &fakeCompressor{}
	_, err := ConvertImageToPayload(context.Background(), PipelineInput{
		SourceImagePath: srcPath,
		SidecarPath:     sidecarPath,
		ScratchDir:      dir,
	}, fc)
	require.NoError(t, err)

	updated, err := os.ReadFile(sidecarPath)
	require.NoError(t, err)
	require.Equal(t, "DXT5", string(updated[0xC:0x10]))
}

func originalFixtureData() []byte {
	b := make([]byte, 0x20)
	b[8] = 0x01
	return b
}
