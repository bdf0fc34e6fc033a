// Package svg renders a QR module grid as a standalone SVG 1.1 document.
//
// Every dark module becomes one unit square subpath of a single <path>, placed
// at its module coordinate plus the quiet zone, so the document's user units
// are modules. The output always uses "\n" newlines and is byte-identical for
// the same grid and border.
package svg

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/Mictilt/qrsvg"
)

// ErrInvalidArgument is returned for a negative border.
var ErrInvalidArgument = errors.New("svg: invalid argument")

// _defaultPixelSize is the width/height presentation attribute.
const _defaultPixelSize = 200

// Render returns the SVG document for grid with border quiet-zone modules on
// every side. Options only touch presentation attributes, never the viewBox
// or the path data.
func Render(grid qrsvg.ModuleGrid, border int, opts ...Option) (string, error) {
	if border < 0 {
		return "", errors.Wrapf(ErrInvalidArgument, "border must be non-negative, got %d", border)
	}

	oo := defaultOptions()
	for _, opt := range opts {
		opt.apply(oo)
	}

	size := grid.Size()
	dim := size + border*2

	var b strings.Builder
	// header + footer is ~330 bytes, each module command at most ~20.
	b.Grow(330 + size*size*10)

	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %d %d" stroke="none" width="%d" height="%d">
    <rect width="100%%" height="100%%" fill="#FFFFFF"/>
    <path d="`, dim, dim, oo.pixelSize, oo.pixelSize)

	writePathData(&b, grid, border)

	b.WriteString(`" fill="#000000"/>
</svg>
`)

	return b.String(), nil
}

// PathData returns only the d attribute Render would emit.
func PathData(grid qrsvg.ModuleGrid, border int) (string, error) {
	if border < 0 {
		return "", errors.Wrapf(ErrInvalidArgument, "border must be non-negative, got %d", border)
	}

	var b strings.Builder
	writePathData(&b, grid, border)
	return b.String(), nil
}

// writePathData walks rows top to bottom and columns left to right.
func writePathData(b *strings.Builder, grid qrsvg.ModuleGrid, border int) {
	size := grid.Size()
	first := true
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !grid.ModuleAt(x, y) {
				continue
			}
			if !first {
				b.WriteByte(' ')
			}
			first = false
			fmt.Fprintf(b, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
}
