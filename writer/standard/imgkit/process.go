package imgkit

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Gray converts src into a gray image with the same bounds.
func Gray(src image.Image) *image.Gray {
	bounds := src.Bounds()
	gray := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.GrayModel.Convert(src.At(x, y))
			gray.SetGray(x, y, c.(color.Gray))
		}
	}

	return gray
}

// Scale resamples src into rect. A nil scale uses ApproxBiLinear; module
// images want draw.NearestNeighbor to keep edges hard.
func Scale(src image.Image, rect image.Rectangle, scale draw.Scaler) image.Image {
	if scale == nil {
		scale = draw.ApproxBiLinear
	}

	dst := image.NewRGBA(rect)
	scale.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
	return dst
}
