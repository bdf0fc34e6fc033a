package standard

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

type formatTyp uint8

const (
	// PNG_FORMAT as default output file format.
	PNG_FORMAT formatTyp = iota
	// JPEG_FORMAT .
	JPEG_FORMAT
)

// ImageEncoder is an interface which describes the rule how to encode image.Image into io.Writer
type ImageEncoder interface {
	// Encode specify which format to encode image into io.Writer.
	Encode(w io.Writer, img image.Image) error
}

type jpegEncoder struct{}

func (j jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

type pngEncoder struct{}

func (j pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// ContentType returns the MIME type of the built-in format.
func (f formatTyp) ContentType() string {
	if f == JPEG_FORMAT {
		return "image/jpeg"
	}
	return "image/png"
}
