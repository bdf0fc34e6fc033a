package svg

type outputOptions struct {
	// pixelSize is the width and height presentation attribute.
	pixelSize int

	// border is used by Writer only, Render takes it as an argument.
	border int
}

func defaultOptions() *outputOptions {
	return &outputOptions{
		pixelSize: _defaultPixelSize,
		border:    _defaultBorder,
	}
}

// Option configures Render and Writer.
type Option interface {
	apply(oo *outputOptions)
}

// funcOption wraps a function that modifies outputOptions into an
// implementation of the Option interface.
type funcOption struct {
	f func(oo *outputOptions)
}

func (fo *funcOption) apply(oo *outputOptions) {
	fo.f(oo)
}

func newFuncOption(f func(oo *outputOptions)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithPixelSize sets the width and height attributes of the <svg> element.
// Non-positive values are ignored.
func WithPixelSize(px int) Option {
	return newFuncOption(func(oo *outputOptions) {
		if px <= 0 {
			return
		}

		oo.pixelSize = px
	})
}

// WithBorder sets the quiet zone Writer renders with, in modules. A negative
// value makes Write fail with ErrInvalidArgument.
func WithBorder(modules int) Option {
	return newFuncOption(func(oo *outputOptions) {
		oo.border = modules
	})
}
