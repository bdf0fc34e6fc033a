// Package qrsvg turns text into QR module grids and defines the read-only
// grid contract the writers render from.
//
// Symbol encoding is done by github.com/yeqown/go-qrcode/v2; this package only
// adapts its matrix into a ModuleGrid:
//
//	text, err := qrsvg.JoinInputs([]string{"https://a.example", "", "https://b.example"})
//	grid, err := qrsvg.Encode(text)
//	doc, err := svg.Render(grid, 4)
package qrsvg

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"
)

var (
	// ErrEmptyInput is returned by JoinInputs when every input is empty.
	ErrEmptyInput = errors.New("qrsvg: no non-empty input")
	// ErrInvalidGrid is returned when a grid is empty or not square.
	ErrInvalidGrid = errors.New("qrsvg: grid must be a non-empty square")
)

// ModuleGrid is the read-only view of a finished QR symbol.
// ModuleAt is only defined for 0 <= x, y < Size().
type ModuleGrid interface {
	// Size returns the number of modules along one side.
	Size() int
	// ModuleAt reports whether the module at column x, row y is dark.
	ModuleAt(x, y int) bool
}

// Grid is an immutable square matrix of modules, stored row-major.
type Grid struct {
	size    int
	modules []bool
}

var _ ModuleGrid = (*Grid)(nil)

// NewGrid copies rows into a Grid. rows[y][x] is the module at column x, row y.
func NewGrid(rows [][]bool) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidGrid
	}

	g := &Grid{size: n, modules: make([]bool, n*n)}
	for y, row := range rows {
		if len(row) != n {
			return nil, errors.Wrapf(ErrInvalidGrid, "row %d has %d modules, want %d", y, len(row), n)
		}
		copy(g.modules[y*n:], row)
	}

	return g, nil
}

// FromMatrix copies the encoder's matrix into a Grid.
func FromMatrix(mat qrcode.Matrix) (*Grid, error) {
	n := mat.Width()
	if n == 0 || n != mat.Height() {
		return nil, errors.Wrapf(ErrInvalidGrid, "matrix is %dx%d", mat.Width(), mat.Height())
	}

	g := &Grid{size: n, modules: make([]bool, n*n)}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		g.modules[y*n+x] = v.IsSet()
	})

	return g, nil
}

// Size implements ModuleGrid.
func (g *Grid) Size() int { return g.size }

// ModuleAt implements ModuleGrid.
func (g *Grid) ModuleAt(x, y int) bool {
	return g.modules[y*g.size+x]
}

// Dark counts the dark modules.
func (g *Grid) Dark() int {
	n := 0
	for _, m := range g.modules {
		if m {
			n++
		}
	}
	return n
}

// JoinInputs drops empty strings and joins the rest with a newline, the
// payload format the form submits to the encoder.
func JoinInputs(inputs []string) (string, error) {
	kept := make([]string, 0, len(inputs))
	for _, s := range inputs {
		if s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return "", ErrEmptyInput
	}

	return strings.Join(kept, "\n"), nil
}
