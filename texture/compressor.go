package texture

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nfshpr-tools/bundlekit/errs"
	"github.com/nfshpr-tools/bundlekit/format"
)

// BlockCompressor invokes an external block compressor on a PNG source
// and returns the path to the block-compressed file it produced. It is
// a hard collaborator boundary — tests substitute a fake that writes a
// known-good file instead of shelling out.
type BlockCompressor interface {
	Compress(ctx context.Context, pngPath, outDir string, f format.TextureFormat) (ddsPath string, err error)
}

// ToolError wraps a failed block-compressor invocation with the
// stderr it produced, so callers can inspect the underlying tool
// output via errors.As instead of parsing the error string.
type ToolError struct {
	ToolPath string
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %v", e.ToolPath, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.ToolPath, e.Err, e.Stderr)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// execCompressor shells out to a real block-compressor binary.
type execCompressor struct {
	toolPath string
}

// NewExecCompressor returns a BlockCompressor backed by the binary at
// toolPath, invoked as `<tool> -f <bc_format> -m 1 -o <dir> -y <png>`.
func NewExecCompressor(toolPath string) BlockCompressor {
	return execCompressor{toolPath: toolPath}
}

func (c execCompressor) Compress(ctx context.Context, pngPath, outDir string, f format.TextureFormat) (string, error) {
	if !toolExists(c.toolPath) {
		return "", fmt.Errorf("%w: %s", errs.ErrToolNotFound, c.toolPath)
	}

	cmd := exec.CommandContext(ctx, c.toolPath,
		"-f", f.CompressorName(),
		"-m", "1",
		"-o", outDir,
		"-y",
		pngPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &ToolError{
			ToolPath: c.toolPath,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      fmt.Errorf("%w", errs.ErrToolFailed),
		}
	}

	base := strings.TrimSuffix(filepath.Base(pngPath), filepath.Ext(pngPath))
	return filepath.Join(outDir, base+".dds"), nil
}

func toolExists(path string) bool {
	if strings.ContainsAny(path, string(filepath.Separator)) {
		_, err := os.Stat(path)
		return err == nil
	}

	_, err := exec.LookPath(path)
	return err == nil
}
