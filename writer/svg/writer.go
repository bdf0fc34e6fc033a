package svg

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"

	"github.com/Mictilt/qrsvg"
)

// _defaultBorder is the quiet zone the QR standard asks for.
const _defaultBorder = 4

var _ qrcode.Writer = (*Writer)(nil)

// Writer saves an encoded QR code as an SVG document, e.g.
//
//	w, _ := svg.New("qrcode.svg")
//	_ = qrc.Save(w)
type Writer struct {
	option *outputOptions

	closer io.WriteCloser
}

// New creates a Writer that writes into filename, truncating it.
func New(filename string, opts ...Option) (*Writer, error) {
	fd, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrap(err, "create file failed")
	}

	return NewWithWriter(fd, opts...), nil
}

// NewWithWriter creates a Writer on top of wr. Close closes wr.
func NewWithWriter(wr io.WriteCloser, opts ...Option) *Writer {
	oo := defaultOptions()
	for _, opt := range opts {
		opt.apply(oo)
	}

	return &Writer{
		option: oo,
		closer: wr,
	}
}

// Write renders mat and writes the document.
func (w Writer) Write(mat qrcode.Matrix) error {
	grid, err := qrsvg.FromMatrix(mat)
	if err != nil {
		return err
	}

	return w.WriteGrid(grid)
}

// WriteGrid renders any ModuleGrid and writes the document.
func (w Writer) WriteGrid(grid qrsvg.ModuleGrid) error {
	if w.closer == nil {
		return errors.New("svg: writer has no destination")
	}

	doc, err := Render(grid, w.option.border, WithPixelSize(w.option.pixelSize))
	if err != nil {
		return err
	}

	if _, err = io.WriteString(w.closer, doc); err != nil {
		return errors.Wrap(err, "write svg")
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
