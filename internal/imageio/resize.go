package imageio

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ResizeToPowerOfTwo resamples img to width x height using a
// Catmull-Rom kernel, the closest quality tier golang.org/x/image/draw
// offers to the original tool's LANCZOS resampling.
func ResizeToPowerOfTwo(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// PadToMultipleOf4 pads img on the right and bottom to (width, height)
// — which must each be >= the source dimension and already rounded up
// to a multiple of 4 — filling new pixels with transparent black if
// hasAlpha, or opaque black otherwise.
func PadToMultipleOf4(img image.Image, width, height int, hasAlpha bool) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	if hasAlpha {
		draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	} else {
		draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
	}

	draw.Draw(dst, img.Bounds(), img, img.Bounds().Min, draw.Src)

	return dst
}
