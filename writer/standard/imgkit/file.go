package imgkit

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Read decodes a PNG or JPEG file.
func Read(path string) (image.Image, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", path)
	}

	return img, nil
}

// Save encodes img by the extension of path, PNG unless it is .jpg or .jpeg.
func Save(img image.Image, path string) error {
	fd, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create image")
	}
	defer fd.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(fd, img, nil)
	default:
		err = png.Encode(fd, img)
	}

	return errors.Wrapf(err, "encode image %s", path)
}
