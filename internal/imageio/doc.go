// Package imageio decodes the source image formats the texture pipeline
// accepts and provides the small pixel-level and dimension helpers the
// format-selection and normalization steps need.
//
// Decode dispatches on file extension: .png and .jpg/.jpeg go through
// the standard library, .tga through a hand-written minimal decoder
// (uncompressed truecolor only, since this module carries no dependency
// with a TGA codec). Any other extension, .dds included, is rejected
// with errs.ErrUnsupportedImageFormat; DDS sources are read through
// raster.ReadHeaderInfo for their FOURCC and dimensions instead.
package imageio
