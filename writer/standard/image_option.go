package standard

import (
	"image/color"
	"strconv"
	"strings"
)

const (
	_defaultQRWidth = 20
	_defaultBorder  = 4
)

type outputImageOptions struct {
	// bgColor is the background color, white by default.
	bgColor color.RGBA
	// bgTransparent skips painting the background.
	bgTransparent bool

	// qrColor is the dark module color, black by default.
	qrColor color.RGBA

	// qrWidth is the pixel width of one module.
	qrWidth int

	// border is the quiet zone in modules.
	border int

	// resolution, when set, is the final edge length in pixels.
	resolution int

	shape        IShape
	imageEncoder ImageEncoder
}

func defaultOutputImageOption() *outputImageOptions {
	return &outputImageOptions{
		bgColor:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		qrColor:      color.RGBA{A: 0xff},
		qrWidth:      _defaultQRWidth,
		border:       _defaultBorder,
		shape:        _shapeRectangle,
		imageEncoder: pngEncoder{},
	}
}

func (oo *outputImageOptions) qrBlockWidth() int {
	if oo.qrWidth <= 0 {
		return _defaultQRWidth
	}
	return oo.qrWidth
}

func (oo *outputImageOptions) getShape() IShape {
	if oo.shape == nil {
		return _shapeRectangle
	}
	return oo.shape
}

func (oo *outputImageOptions) backgroundColor() color.Color {
	if oo.bgTransparent {
		return color.Transparent
	}
	return oo.bgColor
}

func parseFromColor(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// parseFromHex accepts "#rrggbb", "rrggbb", "#rgb" and "rgb". Anything else
// yields opaque black.
func parseFromHex(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	c := color.RGBA{A: 0xff}
	if len(s) != 6 {
		return c
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return c
	}

	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return c
}
