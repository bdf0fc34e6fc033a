// Package form holds the state of the multi-field input form.
package form

import (
	"strconv"

	"github.com/pkg/errors"
)

// DefaultMaxFields is how many input fields the form offers at most.
const DefaultMaxFields = 15

// ErrMaxFields is returned by Add when the counter is already at its maximum.
var ErrMaxFields = errors.New("form: maximum number of fields reached")

// Warnings shown to the user.
const (
	MaxFieldsWarning = "You have reached the maximum number of URLs."
	EmptyWarning     = "Please enter at least one URL."
	TooLongWarning   = "The text is too long for a QR code."
)

// Counter is the number of input fields shown, always within [1, max].
// The zero value is not usable, see NewCounter.
type Counter struct {
	n   int
	max int
}

// NewCounter restores a counter at n, clamped into [1, max]. A max below 1
// falls back to DefaultMaxFields.
func NewCounter(n, max int) Counter {
	if max < 1 {
		max = DefaultMaxFields
	}
	c := Counter{n: n, max: max}
	c.clamp()
	return c
}

// N returns the current number of fields.
func (c Counter) N() int { return c.n }

// Max returns the upper bound.
func (c Counter) Max() int { return c.max }

// Add shows one more field. At the maximum the count stays unchanged and
// ErrMaxFields is returned for the UI to display.
func (c *Counter) Add() error {
	c.n++
	if c.n > c.max {
		c.n = c.max
		return ErrMaxFields
	}
	return nil
}

// Remove hides the last field, keeping at least one.
func (c *Counter) Remove() {
	if c.n > 1 {
		c.n--
	}
}

func (c *Counter) clamp() {
	if c.n < 1 {
		c.n = 1
	}
	if c.n > c.max {
		c.n = c.max
	}
}

// FieldKey is the form key of the i-th field, zero based.
func FieldKey(i int) string {
	return "url_" + strconv.Itoa(i)
}

// FieldLabel is the label shown for the i-th field, zero based.
func FieldLabel(i int) string {
	return "URL No. " + strconv.Itoa(i+1) + ":"
}
