package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfshpr-tools/bundlekit/errs"
)

// Decode reads path and returns its decoded image along with a short
// kind tag ("png", "jpeg", "tga") identifying the codec used. DDS
// sources are not handled here — format selection reads them through
// raster.ReadHeaderInfo instead, since full BC decompression is out of
// scope.
func Decode(path string) (image.Image, string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", errs.ErrImageDecodeFailed, err)
	}
	defer f.Close()

	switch ext {
	case ".png":
		img, err := png.Decode(f)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", errs.ErrImageDecodeFailed, err)
		}
		return img, "png", nil

	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(f)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", errs.ErrImageDecodeFailed, err)
		}
		return img, "jpeg", nil

	case ".tga":
		img, err := decodeTGA(f)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", errs.ErrImageDecodeFailed, err)
		}
		return img, "tga", nil

	default:
		return nil, "", errs.ErrUnsupportedImageFormat
	}
}
