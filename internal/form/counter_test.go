package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCounter_clamps(t *testing.T) {
	assert.Equal(t, 1, NewCounter(0, 15).N())
	assert.Equal(t, 1, NewCounter(-4, 15).N())
	assert.Equal(t, 7, NewCounter(7, 15).N())
	assert.Equal(t, 15, NewCounter(99, 15).N())
	assert.Equal(t, DefaultMaxFields, NewCounter(1, 0).Max())
}

func TestCounter_AddUntilMax(t *testing.T) {
	c := NewCounter(1, 3)

	assert.NoError(t, c.Add())
	assert.NoError(t, c.Add())
	assert.Equal(t, 3, c.N())

	assert.ErrorIs(t, c.Add(), ErrMaxFields)
	assert.Equal(t, 3, c.N())
	assert.ErrorIs(t, c.Add(), ErrMaxFields)
	assert.Equal(t, 3, c.N())
}

func TestCounter_RemoveKeepsOne(t *testing.T) {
	c := NewCounter(2, 15)

	c.Remove()
	assert.Equal(t, 1, c.N())
	c.Remove()
	assert.Equal(t, 1, c.N())
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "url_0", FieldKey(0))
	assert.Equal(t, "url_14", FieldKey(14))
	assert.Equal(t, "URL No. 1:", FieldLabel(0))
	assert.Equal(t, "URL No. 15:", FieldLabel(14))
}
