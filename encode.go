package qrsvg

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"
)

// Level is the error-correction level handed to the encoder.
type Level uint8

const (
	// LevelLow recovers ~7% of data and is the default.
	LevelLow Level = iota
	// LevelMedium recovers ~15%.
	LevelMedium
	// LevelQuart recovers ~25%.
	LevelQuart
	// LevelHigh recovers ~30%.
	LevelHigh
)

// ErrUnknownLevel is returned by ParseLevel.
var ErrUnknownLevel = errors.New("qrsvg: unknown error correction level")

// ParseLevel maps "low", "medium", "quart" and "high" (case-insensitive,
// single letters accepted) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "l", "low":
		return LevelLow, nil
	case "m", "medium":
		return LevelMedium, nil
	case "q", "quart", "quartile":
		return LevelQuart, nil
	case "h", "high", "highest":
		return LevelHigh, nil
	}
	return LevelLow, errors.Wrapf(ErrUnknownLevel, "%q", s)
}

func (l Level) String() string {
	switch l {
	case LevelMedium:
		return "medium"
	case LevelQuart:
		return "quart"
	case LevelHigh:
		return "high"
	default:
		return "low"
	}
}

func (l Level) encodeOption() qrcode.EncodeOption {
	switch l {
	case LevelMedium:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	case LevelQuart:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	case LevelHigh:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	}
}

type encodeOptions struct {
	level Level
}

// EncodeOption configures Encode.
type EncodeOption interface {
	apply(o *encodeOptions)
}

type funcEncodeOption struct {
	f func(o *encodeOptions)
}

func (fo funcEncodeOption) apply(o *encodeOptions) { fo.f(o) }

// WithLevel selects the error-correction level.
func WithLevel(l Level) EncodeOption {
	return funcEncodeOption{f: func(o *encodeOptions) {
		o.level = l
	}}
}

// Encode builds the QR symbol for text and returns its module grid, without
// any quiet zone. Encoder failures, e.g. text too long for the largest
// version, are returned wrapped.
func Encode(text string, opts ...EncodeOption) (*Grid, error) {
	o := encodeOptions{level: LevelLow}
	for _, opt := range opts {
		opt.apply(&o)
	}

	qrc, err := qrcode.NewWith(text, o.level.encodeOption())
	if err != nil {
		return nil, errors.Wrap(err, "encode qrcode")
	}

	c := &gridCapture{}
	if err = qrc.Save(c); err != nil {
		return nil, err
	}

	return c.grid, nil
}

// gridCapture is a qrcode.Writer that keeps the matrix as a Grid.
type gridCapture struct {
	grid *Grid
}

func (c *gridCapture) Write(mat qrcode.Matrix) (err error) {
	c.grid, err = FromMatrix(mat)
	return err
}

func (c *gridCapture) Close() error { return nil }
