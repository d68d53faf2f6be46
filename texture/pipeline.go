package texture

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfshpr-tools/bundlekit/errs"
	"github.com/nfshpr-tools/bundlekit/format"
	"github.com/nfshpr-tools/bundlekit/internal/imageio"
	"github.com/nfshpr-tools/bundlekit/raster"
	"github.com/nfshpr-tools/bundlekit/section"
)

// PipelineInput describes one texture resource's conversion request.
type PipelineInput struct {
	// SourceImagePath is the artist-exported source (.png, .jpg/.jpeg, .tga, or .dds).
	SourceImagePath string

	// SidecarPath is the target metadata .dat file; it may not exist yet.
	SidecarPath string

	// ScratchDir is where temporary PNG/DDS files are written and
	// cleaned up. Defaults to SourceImagePath's directory.
	ScratchDir string
}

// PipelineResult reports what ConvertImageToPayload produced.
type PipelineResult struct {
	PayloadPath   string
	Format        format.TextureFormat
	Width, Height int
	Warnings      []string
}

// ConvertImageToPayload runs the full format-selection, normalization,
// and conversion pipeline for one texture resource, writing its
// <base>_texture.dat payload and updating the sidecar's format byte.
func ConvertImageToPayload(ctx context.Context, in PipelineInput, bc BlockCompressor) (PipelineResult, error) {
	scratchDir := in.ScratchDir
	if scratchDir == "" {
		scratchDir = filepath.Dir(in.SourceImagePath)
	}

	var result PipelineResult
	var scratchFiles []string
	defer func() {
		for _, f := range scratchFiles {
			os.Remove(f)
		}
	}()

	sidecarBytes, _ := os.ReadFile(in.SidecarPath)
	var sidecar section.Sidecar
	if sidecarBytes != nil {
		sidecar, _ = section.DetectSidecar(sidecarBytes)
	}

	ext := strings.ToLower(filepath.Ext(in.SourceImagePath))

	var ddsFourCC string
	var img image.Image
	var width, height int

	if ext == ".dds" {
		info, fourcc, err := readDDSSourceInfo(in.SourceImagePath)
		if err != nil {
			return result, err
		}
		ddsFourCC = fourcc
		width, height = info.Width, info.Height
	} else {
		decoded, _, err := imageio.Decode(in.SourceImagePath)
		if err != nil {
			return result, err
		}
		img = decoded
		width = img.Bounds().Dx()
		height = img.Bounds().Dy()
	}

	siblingFourCC := ""
	base := strings.TrimSuffix(in.SourceImagePath, filepath.Ext(in.SourceImagePath))
	if siblingInfo, _, err := readDDSSourceInfo(base + ".dds"); err == nil {
		siblingFourCC = siblingInfo.FourCC
	}

	selected := SelectFormat(FormatSelectionInput{
		SourceFourCC:  ddsFourCC,
		SiblingFourCC: siblingFourCC,
		Sidecar:       sidecar,
		SidecarBytes:  sidecarBytes,
		Image:         img,
	})
	result.Format = selected

	decision := NormalizeDimensions(width, height)
	result.Width, result.Height = decision.TargetWidth, decision.TargetHeight

	var payload []byte

	if ext == ".dds" {
		_, rawPayload, err := raster.ReadPayload(in.SourceImagePath)
		if err != nil {
			return result, err
		}
		payload = rawPayload
	} else {
		prepared := img
		if decision.NeedsResample {
			prepared = imageio.ResizeToPowerOfTwo(img, decision.TargetWidth, decision.TargetHeight)
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"resampled source from %dx%d to %dx%d to satisfy power-of-two requirement",
				width, height, decision.TargetWidth, decision.TargetHeight))
		} else if decision.NeedsPad {
			hasAlpha := imageio.HasAlphaChannel(img) || selected == format.TextureFormatBC3
			prepared = imageio.PadToMultipleOf4(img, decision.TargetWidth, decision.TargetHeight, hasAlpha)
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"padded source from %dx%d to %dx%d to satisfy multiple-of-4 requirement",
				width, height, decision.TargetWidth, decision.TargetHeight))
		}

		scratchPNG := filepath.Join(scratchDir, scratchBaseName(in.SourceImagePath)+"_temp_clean.png")
		if err := writePNG(scratchPNG, prepared); err != nil {
			return result, err
		}
		scratchFiles = append(scratchFiles, scratchPNG)

		ddsPath, err := bc.Compress(ctx, scratchPNG, scratchDir, selected)
		if err != nil {
			return result, err
		}
		scratchFiles = append(scratchFiles, ddsPath)

		_, rawPayload, err := raster.ReadPayload(ddsPath)
		if err != nil {
			return result, err
		}

		ok, ratio := raster.ValidatePayloadSize(int64(len(rawPayload)), decision.TargetWidth, decision.TargetHeight, selected)
		if !ok {
			return result, fmt.Errorf("%w: got %.1f%% of expected size", errs.ErrCompressorOutputTooSmall, ratio*100)
		}

		payload = rawPayload
	}

	payloadPath := strings.TrimSuffix(in.SidecarPath, ".dat") + "_texture.dat"
	if err := os.MkdirAll(filepath.Dir(payloadPath), 0o755); err != nil {
		return result, err
	}
	if err := os.WriteFile(payloadPath, payload, 0o644); err != nil {
		return result, err
	}
	result.PayloadPath = payloadPath

	if sidecar != nil {
		updated, err := sidecar.WriteFormat(sidecarBytes, selected)
		if err == nil {
			if decision.NeedsResample || decision.NeedsPad {
				updated = sidecar.WriteDimensions(updated, uint16(result.Width), uint16(result.Height))
			}
			_ = os.WriteFile(in.SidecarPath, updated, 0o644)
		}
	}

	return result, nil
}

func readDDSSourceInfo(path string) (raster.HeaderInfo, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return raster.HeaderInfo{}, "", err
	}

	info, err := raster.ReadHeaderInfo(data)
	if err != nil {
		return raster.HeaderInfo{}, "", err
	}

	return info, info.FourCC, nil
}

func scratchBaseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
