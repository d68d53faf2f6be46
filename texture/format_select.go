package texture

import (
	"image"

	"github.com/nfshpr-tools/bundlekit/format"
	"github.com/nfshpr-tools/bundlekit/internal/imageio"
	"github.com/nfshpr-tools/bundlekit/section"
)

// FormatSelectionInput carries every piece of evidence the pipeline can
// gather before deciding which block-compressed format to target. Each
// field is evaluated in priority order; leave a field zero/empty when
// that evidence wasn't available.
type FormatSelectionInput struct {
	// SourceFourCC is set when the source image is itself a
	// block-compressed raster (its own FOURCC is adopted verbatim).
	SourceFourCC string

	// SiblingFourCC is set when a sibling block-compressed file with the
	// same base name exists (its FOURCC is mirrored).
	SiblingFourCC string

	// Sidecar, if non-nil, is the target sidecar's detected dialect, and
	// SidecarBytes its current contents — read to recover a previously
	// recorded format.
	Sidecar     section.Sidecar
	SidecarBytes []byte

	// Image is the decoded source, used only for steps 4's auto-detection.
	// Nil when the source was itself a DDS (step 1 already resolved it).
	Image image.Image
}

// SelectFormat chooses a TextureFormat from in, applying the priority
// order: adopt the source's own FOURCC, then a sibling DDS's FOURCC,
// then the sidecar's recorded format, then auto-detection from the
// decoded image (alpha mask or alpha channel select BC3, opaque
// selects BC1).
func SelectFormat(in FormatSelectionInput) format.TextureFormat {
	if in.SourceFourCC != "" {
		if f := format.TextureFormatFromFourCC(in.SourceFourCC); f != format.TextureFormatUnknown {
			return f
		}
	}

	if in.SiblingFourCC != "" {
		if f := format.TextureFormatFromFourCC(in.SiblingFourCC); f != format.TextureFormatUnknown {
			return f
		}
	}

	if in.Sidecar != nil && in.SidecarBytes != nil {
		if f, err := in.Sidecar.Format(in.SidecarBytes); err == nil && f != format.TextureFormatUnknown {
			return f
		}
	}

	if in.Image != nil {
		if imageio.IsAlphaMask(in.Image) || imageio.HasAlphaChannel(in.Image) {
			return format.TextureFormatBC3
		}
	}

	return format.TextureFormatBC1
}
