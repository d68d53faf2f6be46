package texture

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nfshpr-tools/bundlekit/errs"
	"github.com/nfshpr-tools/bundlekit/format"
	"github.com/stretchr/testify/require"
)

func TestExecCompressorToolNotFound(t *testing.T) {
	c := NewExecCompressor("/nonexistent/path/to/texconv-stub")
	_, err := c.Compress(context.Background(), "source.png", t.TempDir(), format.TextureFormatBC1)
	require.ErrorIs(t, err, errs.ErrToolNotFound)
}

func TestExecCompressorToolFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub unsupported on windows")
	}

	dir := t.TempDir()
	stub := filepath.Join(dir, "fake_texconv.sh")
	require.NoError(t, os.WriteFile(stub, []byte("#!/bin/sh\necho boom 1>&2\nexit 1\n"), 0o755))

	c := NewExecCompressor(stub)
	_, err := c.Compress(context.Background(), "source.png", dir, format.TextureFormatBC1)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrToolFailed)

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	require.Equal(t, "boom", toolErr.Stderr)
}

func TestExecCompressorSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub unsupported on windows")
	}

	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0o755))

	stub := filepath.Join(dir, "fake_texconv.sh")
	script := "#!/bin/sh\nshift $(($#-1))\nbase=$(basename \"$1\" .png)\ntouch \"$PWD_OUT/$base.dds\"\n"
	require.NoError(t, os.WriteFile(stub, []byte(script), 0o755))

	pngPath := filepath.Join(dir, "decal.png")
	require.NoError(t, os.WriteFile(pngPath, []byte("fake-png"), 0o644))

	c := execCompressor{toolPath: stub}
	os.Setenv("PWD_OUT", outDir)
	defer os.Unsetenv("PWD_OUT")

	ddsPath, err := c.Compress(context.Background(), pngPath, outDir, format.TextureFormatBC1)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outDir, "decal.dds"), ddsPath)
}

func TestToolExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(existing, []byte{}, 0o755))

	require.True(t, toolExists(existing))
	require.False(t, toolExists(filepath.Join(dir, "missing")))
}
