package standard

import (
	"image/color"

	"github.com/fogleman/gg"
)

var (
	_shapeRectangle IShape = rectangle{}
	_shapeCircle    IShape = circle{}
)

// IShape draws a single dark module.
type IShape interface {
	// Draw the shape of QRCode block in IShape implemented way.
	Draw(ctx *DrawContext)
}

// GraphicsContext is the subset of gg.Context shapes draw with.
type GraphicsContext interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	ClosePath()
	NewSubPath()
	DrawCircle(cx, cy, radius float64)
	DrawRectangle(x, y, w, h float64)
	SetColor(c color.Color)
	Fill()
}

var _ GraphicsContext = (*gg.Context)(nil)

// DrawContext is the square area of one module in pixels.
type DrawContext struct {
	GraphicsContext

	x, y float64
	w, h int

	color      color.Color
	neighbours uint16
}

// UpperLeft returns the point which indicates the upper left position.
func (dc *DrawContext) UpperLeft() (dx, dy float64) {
	return dc.x, dc.y
}

// Edge returns width and height of each shape could take at most.
func (dc *DrawContext) Edge() (width, height int) {
	return dc.w, dc.h
}

// Bit flags for the 8 surrounding cells in a 3x3 grid around the center (x, y).
// Layout:
// NTopLeft		NTop 	NTopRight
// NLeft  		NSelf	NRight
// NBotLeft 	NBot 	NBotRight
const (
	NTopLeft  uint16 = 1 << iota // top-left
	NTop                         // top
	NTopRight                    // top-right
	NLeft                        // left
	NSelf                        // center (self)
	NRight                       // right
	NBotLeft                     // bottom-left
	NBot                         // bottom
	NBotRight                    // bottom-right
)

// Neighbours returns a bitmask of the dark modules around the current one.
func (dc *DrawContext) Neighbours() uint16 {
	return dc.neighbours
}

// Color returns the color which should be filled into the shape. Shapes that
// ignore it also ignore WithFgColor.
func (dc *DrawContext) Color() color.Color {
	return dc.color
}

// rectangle IShape
type rectangle struct{}

func (r rectangle) Draw(c *DrawContext) {
	c.DrawRectangle(c.x, c.y, float64(c.w), float64(c.h))
	c.SetColor(c.color)
	c.Fill()
}

// circle IShape
type circle struct{}

func (r circle) Draw(c *DrawContext) {
	// choose a proper radius values
	radius := c.w / 2
	r2 := c.h / 2
	if r2 <= radius {
		radius = r2
	}

	cx, cy := c.x+float64(c.w)/2.0, c.y+float64(c.h)/2.0 // get center point
	c.DrawCircle(cx, cy, float64(radius))
	c.SetColor(c.color)
	c.Fill()
}

// neighbours builds the NTopLeft..NBotRight mask for the module at (x, y).
// Cells outside the grid count as light.
func neighbours(isDark func(x, y int) bool, size, x, y int) uint16 {
	var mask uint16
	bit := NTopLeft
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx >= 0 && ny >= 0 && nx < size && ny < size && isDark(nx, ny) {
				mask |= bit
			}
			bit <<= 1
		}
	}
	return mask
}
