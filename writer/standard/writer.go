// Package standard rasterizes QR module grids into PNG or JPEG images.
package standard

import (
	"image"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"
	"golang.org/x/image/draw"

	"github.com/Mictilt/qrsvg"
	"github.com/Mictilt/qrsvg/writer/standard/imgkit"
)

// ErrInvalidArgument is returned for a negative border width.
var ErrInvalidArgument = errors.New("standard: invalid argument")

var _ qrcode.Writer = (*Writer)(nil)

// Writer encodes the QR image into a file or any io.WriteCloser.
type Writer struct {
	option *outputImageOptions

	closer io.WriteCloser
}

// New creates a standard writer which writes into filename.
func New(filename string, opts ...ImageOption) (*Writer, error) {
	fd, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrap(err, "create file failed")
	}

	return NewWithWriter(fd, opts...), nil
}

// NewWithWriter creates a standard writer on top of writeCloser.
func NewWithWriter(writeCloser io.WriteCloser, opts ...ImageOption) *Writer {
	oo := defaultOutputImageOption()
	for _, opt := range opts {
		opt.apply(oo)
	}

	return &Writer{
		option: oo,
		closer: writeCloser,
	}
}

// Write implements qrcode.Writer.
func (w Writer) Write(mat qrcode.Matrix) error {
	grid, err := qrsvg.FromMatrix(mat)
	if err != nil {
		return err
	}

	return w.WriteGrid(grid)
}

// WriteGrid draws grid and encodes it into the destination.
func (w Writer) WriteGrid(grid qrsvg.ModuleGrid) error {
	if w.closer == nil {
		return errors.New("standard: writer has no destination")
	}

	img, err := drawGrid(grid, w.option)
	if err != nil {
		return err
	}

	if err = w.option.imageEncoder.Encode(w.closer, img); err != nil {
		return errors.Wrap(err, "encode image")
	}
	return nil
}

// Close closes the underlying writer.
func (w Writer) Close() error {
	if w.closer == nil {
		return nil
	}

	if err := w.closer.Close(); !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

// RenderImage draws grid without encoding it.
func RenderImage(grid qrsvg.ModuleGrid, opts ...ImageOption) (image.Image, error) {
	oo := defaultOutputImageOption()
	for _, opt := range opts {
		opt.apply(oo)
	}

	return drawGrid(grid, oo)
}

// drawGrid paints one shape per dark module, in the same row-major order the SVG
// renderer uses, then rescales when a resolution is set.
func drawGrid(grid qrsvg.ModuleGrid, oo *outputImageOptions) (image.Image, error) {
	if oo.border < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "border must be non-negative, got %d", oo.border)
	}

	size := grid.Size()
	blockWidth := oo.qrBlockWidth()
	dim := (size + oo.border*2) * blockWidth

	dc := gg.NewContext(dim, dim)
	dc.SetColor(oo.backgroundColor())
	dc.Clear()

	shape := oo.getShape()
	ctx := &DrawContext{
		GraphicsContext: dc,
		w:               blockWidth,
		h:               blockWidth,
		color:           oo.qrColor,
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !grid.ModuleAt(x, y) {
				continue
			}

			ctx.x = float64((x + oo.border) * blockWidth)
			ctx.y = float64((y + oo.border) * blockWidth)
			ctx.neighbours = neighbours(grid.ModuleAt, size, x, y)
			shape.Draw(ctx)
		}
	}

	img := dc.Image()
	if oo.resolution > 0 && oo.resolution != dim {
		img = imgkit.Scale(img, image.Rect(0, 0, oo.resolution, oo.resolution), draw.NearestNeighbor)
	}

	return img, nil
}
