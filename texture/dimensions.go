package texture

import "github.com/nfshpr-tools/bundlekit/internal/imageio"

// DimensionDecision is the outcome of normalizing a source image's
// dimensions against the core's requirement that both width and height
// be multiples of 4 and powers of two.
type DimensionDecision struct {
	// NeedsResample is true when the source isn't power-of-two and must
	// be resampled (a destructive, user-confirmed operation upstream).
	NeedsResample bool

	// NeedsPad is true when the source is already power-of-two-adjacent
	// but not a multiple of 4, and can be zero-padded instead.
	NeedsPad bool

	TargetWidth, TargetHeight int
}

// NormalizeDimensions decides how (if at all) a width x height source
// must change to satisfy the core's dimension requirement.
func NormalizeDimensions(width, height int) DimensionDecision {
	if imageio.IsPowerOfTwo(width) && imageio.IsPowerOfTwo(height) && width%4 == 0 && height%4 == 0 {
		return DimensionDecision{TargetWidth: width, TargetHeight: height}
	}

	paddedW := imageio.RoundUpToMultipleOf4(width)
	paddedH := imageio.RoundUpToMultipleOf4(height)

	if imageio.IsPowerOfTwo(paddedW) && imageio.IsPowerOfTwo(paddedH) {
		return DimensionDecision{NeedsPad: true, TargetWidth: paddedW, TargetHeight: paddedH}
	}

	return DimensionDecision{
		NeedsResample: true,
		TargetWidth:   max(4, imageio.NearestPowerOfTwo(width)),
		TargetHeight:  max(4, imageio.NearestPowerOfTwo(height)),
	}
}
