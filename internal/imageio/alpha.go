package imageio

import "image"

// IsAlphaMask reports whether img looks like an alpha-mask texture by
// sampling its center pixel: a low red channel combined with a high
// blue channel is the signature the original tool's authors settled on
// for these bundles' mask convention.
func IsAlphaMask(img image.Image) bool {
	b := img.Bounds()
	cx := b.Min.X + b.Dx()/2
	cy := b.Min.Y + b.Dy()/2

	r, _, bl, _ := img.At(cx, cy).RGBA()
	// image.Color.RGBA returns 16-bit-per-channel values; reduce to 8-bit.
	r8 := uint8(r >> 8)
	b8 := uint8(bl >> 8)

	return r8 < 50 && b8 > 200
}

// HasAlphaChannel reports whether img's concrete type carries an alpha
// channel (RGBA/NRGBA and their 64-bit variants), as opposed to types
// such as image.Gray or image.YCbCr. Pixel values are not inspected: a
// fully opaque NRGBA image still reports true.
func HasAlphaChannel(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return true
	default:
		return false
	}
}
