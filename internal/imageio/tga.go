package imageio

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// decodeTGA decodes an uncompressed 24- or 32-bit truecolor TGA image
// (image type 2). Run-length-encoded (type 10) and color-mapped TGAs
// are not supported — the pipeline's sources are artist-exported
// textures, which this covers.
func decodeTGA(r io.Reader) (image.Image, error) {
	header := make([]byte, 18)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("reading tga header: %w", err)
	}

	idLength := int(header[0])
	imageType := header[2]
	width := int(header[12]) | int(header[13])<<8
	height := int(header[14]) | int(header[15])<<8
	bitsPerPixel := int(header[16])
	descriptor := header[17]

	if imageType != 2 {
		return nil, fmt.Errorf("unsupported tga image type %d (only uncompressed truecolor is supported)", imageType)
	}

	if bitsPerPixel != 24 && bitsPerPixel != 32 {
		return nil, fmt.Errorf("unsupported tga bit depth %d", bitsPerPixel)
	}

	if idLength > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(idLength)); err != nil {
			return nil, fmt.Errorf("skipping tga image id: %w", err)
		}
	}

	bytesPerPixel := bitsPerPixel / 8
	row := make([]byte, width*bytesPerPixel)

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	// Bit 5 of the descriptor selects top-left origin; TGA's default is
	// bottom-left, so rows are flipped unless that bit is set.
	topDown := descriptor&0x20 != 0

	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("reading tga row %d: %w", y, err)
		}

		destY := y
		if !topDown {
			destY = height - 1 - y
		}

		for x := 0; x < width; x++ {
			px := row[x*bytesPerPixel : x*bytesPerPixel+bytesPerPixel]
			b, g, r := px[0], px[1], px[2]
			a := byte(0xFF)
			if bytesPerPixel == 4 {
				a = px[3]
			}

			img.SetNRGBA(x, destY, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}

	return img, nil
}
