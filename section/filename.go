package section

import "fmt"

// BuildResourceFilename returns the on-disk base name (without extension
// or directory) for a resource's identity bytes and count fields.
//
// When count_block is nonzero, _<count_block> is appended, and then
// _<count> too if count is also nonzero. When count_block is zero but
// count is not, the suffix is _0_<count> literally — count_block's zero
// value is spelled out rather than omitted. This looks like it should be
// the same case as "count_block != 0, count != 0" collapsed, but it
// isn't: preserve it exactly, existing bundles depend on it.
func BuildResourceFilename(identity [4]byte, countBlock, count uint8) string {
	base := fmt.Sprintf("%02X_%02X_%02X_%02X", identity[0], identity[1], identity[2], identity[3])

	switch {
	case countBlock != 0 && count != 0:
		return fmt.Sprintf("%s_%d_%d", base, countBlock, count)
	case countBlock != 0:
		return fmt.Sprintf("%s_%d", base, countBlock)
	case count != 0:
		return fmt.Sprintf("%s_0_%d", base, count)
	default:
		return base
	}
}

// TexturePayloadSuffix is appended (before the extension) to a texture
// resource's sidecar filename to name its pixel-payload file.
const TexturePayloadSuffix = "_texture"
