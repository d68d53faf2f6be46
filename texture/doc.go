// Package texture turns a source image into the block-compressed
// payload a texture resource's second stream carries, driving an
// external block-compressor tool and keeping the sidecar's format and
// dimension fields in sync with the result.
//
// Format selection, dimension normalization, and the pipeline's
// orchestration are split into separate files so the pure decision
// logic (format_select.go, dimensions.go) stays unit-testable without
// a real image codec or subprocess.
package texture
