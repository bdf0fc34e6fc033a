package standard

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeqown/go-qrcode/v2"

	"github.com/Mictilt/qrsvg"
	"github.com/Mictilt/qrsvg/writer/standard/imgkit"
)

type bufCloser struct {
	bytes.Buffer
}

func (b *bufCloser) Close() error { return nil }

func diagonal(t *testing.T) *qrsvg.Grid {
	g, err := qrsvg.NewGrid([][]bool{
		{true, false},
		{false, true},
	})
	require.NoError(t, err)
	return g
}

func Test_RenderImage(t *testing.T) {
	img, err := RenderImage(diagonal(t), WithQRWidth(10), WithBorderWidth(1))
	require.NoError(t, err)

	// (2 + 2*1) modules * 10px
	assert.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())

	gray := imgkit.Gray(img)
	dark := func(x, y int) bool { return gray.GrayAt(x, y).Y < 0x80 }

	// centers of modules in image space, border included
	assert.False(t, dark(5, 5), "quiet zone")
	assert.True(t, dark(15, 15), "module (0,0)")
	assert.False(t, dark(25, 15), "module (1,0)")
	assert.False(t, dark(15, 25), "module (0,1)")
	assert.True(t, dark(25, 25), "module (1,1)")
	assert.False(t, dark(35, 35), "quiet zone")
}

func Test_RenderImage_colors(t *testing.T) {
	img, err := RenderImage(diagonal(t),
		WithQRWidth(4),
		WithBorderWidth(0),
		WithFgColorRGBHex("#ff0000"),
		WithBgColor(color.RGBA{B: 0xff, A: 0xff}),
	)
	require.NoError(t, err)

	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
	r, g, b, _ = img.At(5, 1).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
}

func Test_RenderImage_transparent(t *testing.T) {
	img, err := RenderImage(diagonal(t), WithQRWidth(4), WithBgTransparent())
	require.NoError(t, err)

	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a)
}

func Test_RenderImage_resolution(t *testing.T) {
	img, err := RenderImage(diagonal(t), WithQRWidth(3), WithBorderWidth(0), WithResolution(100))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())

	gray := imgkit.Gray(img)
	assert.Less(t, gray.GrayAt(10, 10).Y, uint8(0x80))
	assert.Greater(t, gray.GrayAt(90, 10).Y, uint8(0x80))
}

func Test_RenderImage_negativeBorder(t *testing.T) {
	_, err := RenderImage(diagonal(t), WithBorderWidth(-1))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func Test_RenderImage_circle(t *testing.T) {
	img, err := RenderImage(diagonal(t), WithQRWidth(20), WithBorderWidth(0), WithCircleShape())
	require.NoError(t, err)

	gray := imgkit.Gray(img)
	assert.Less(t, gray.GrayAt(10, 10).Y, uint8(0x80), "circle center")
	assert.Greater(t, gray.GrayAt(1, 1).Y, uint8(0x80), "outside circle")
}

type recordShape struct {
	masks []uint16
}

func (r *recordShape) Draw(ctx *DrawContext) {
	r.masks = append(r.masks, ctx.Neighbours())
}

func Test_RenderImage_neighbours(t *testing.T) {
	shape := &recordShape{}
	_, err := RenderImage(diagonal(t), WithCustomShape(shape))
	require.NoError(t, err)

	require.Len(t, shape.masks, 2)
	assert.Equal(t, NSelf|NBotRight, shape.masks[0])
	assert.Equal(t, NSelf|NTopLeft, shape.masks[1])
}

func Test_Writer_png(t *testing.T) {
	qrc, err := qrcode.New("https://github.com/yeqown/go-qrcode")
	require.NoError(t, err)

	buf := &bufCloser{}
	require.NoError(t, qrc.Save(NewWithWriter(buf, WithQRWidth(2))))

	img, err := png.Decode(&buf.Buffer)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
	assert.Zero(t, img.Bounds().Dx()%2)
}

func Test_Writer_jpegFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "qrcode.jpeg")
	w, err := New(filename, WithBuiltinImageEncoder(JPEG_FORMAT), WithQRWidth(5))
	require.NoError(t, err)

	require.NoError(t, w.WriteGrid(diagonal(t)))
	require.NoError(t, w.Close())

	img, err := imgkit.Read(filename)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())
}

func Test_parseFromHex(t *testing.T) {
	tests := map[string]color.RGBA{
		"#ff0000": {R: 0xff, A: 0xff},
		"00ff00":  {G: 0xff, A: 0xff},
		"#00f":    {B: 0xff, A: 0xff},
		"bogus":   {A: 0xff},
		"#gggggg": {A: 0xff},
	}
	for in, want := range tests {
		assert.Equal(t, want, parseFromHex(in), in)
	}
}

func Test_formatTyp_ContentType(t *testing.T) {
	assert.Equal(t, "image/png", PNG_FORMAT.ContentType())
	assert.Equal(t, "image/jpeg", JPEG_FORMAT.ContentType())
}
