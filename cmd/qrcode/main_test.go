package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mictilt/qrsvg"
	"github.com/Mictilt/qrsvg/writer/svg"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	err := newApp(out, &bytes.Buffer{}).Run(append([]string{"qrcode"}, args...))
	return out.String(), err
}

func TestRender_stdout(t *testing.T) {
	out, err := run(t, "render", "-o", "-", "https://a.example", "", "https://b.example")
	require.NoError(t, err)

	grid, err := qrsvg.Encode("https://a.example\nhttps://b.example")
	require.NoError(t, err)
	want, err := svg.Render(grid, 4)
	require.NoError(t, err)

	assert.Equal(t, want, out)
}

func TestRender_file(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.svg")

	_, err := run(t, "render", "-o", name, "-b", "0", "--size", "64", "-l", "high", "hello")
	require.NoError(t, err)

	grid, err := qrsvg.Encode("hello", qrsvg.WithLevel(qrsvg.LevelHigh))
	require.NoError(t, err)
	want, err := svg.Render(grid, 0, svg.WithPixelSize(64))
	require.NoError(t, err)

	got, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestRender_png(t *testing.T) {
	out, err := run(t, "render", "-f", "png", "-o", "-", "--size", "3", "hello")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader([]byte(out)))
	require.NoError(t, err)

	grid, err := qrsvg.Encode("hello")
	require.NoError(t, err)
	assert.Equal(t, (grid.Size()+8)*3, img.Bounds().Dx())
}

func TestRender_pngDefaultModuleWidth(t *testing.T) {
	out, err := run(t, "render", "-f", "png", "-o", "-", "hello")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader([]byte(out)))
	require.NoError(t, err)

	grid, err := qrsvg.Encode("hello")
	require.NoError(t, err)
	assert.Equal(t, (grid.Size()+8)*_defaultModuleWidth, img.Bounds().Dx())
}

func TestRender_svgDefaultPixelSize(t *testing.T) {
	out, err := run(t, "render", "-o", "-", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, `width="200" height="200"`)
}

func TestRender_errors(t *testing.T) {
	_, err := run(t, "render", "-o", "-")
	assert.Error(t, err)

	_, err = run(t, "render", "-o", "-", "", "")
	assert.Error(t, err)

	_, err = run(t, "render", "-o", "-", "-l", "x", "hello")
	assert.ErrorIs(t, err, qrsvg.ErrUnknownLevel)

	_, err = run(t, "render", "-o", "-", "-f", "gif", "hello")
	assert.Error(t, err)

	_, err = run(t, "render", "-o", "-", "-b", "-1", "hello")
	assert.ErrorIs(t, err, svg.ErrInvalidArgument)
}

func TestServe_badConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(name, []byte("qr:\n  border: -1\n"), 0600))

	_, err := run(t, "serve", "--config", name)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qr.border")
}
