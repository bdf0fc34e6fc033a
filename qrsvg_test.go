package qrsvg

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewGrid(t *testing.T) {
	g, err := NewGrid([][]bool{
		{true, false},
		{false, true},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Size())
	assert.True(t, g.ModuleAt(0, 0))
	assert.False(t, g.ModuleAt(1, 0))
	assert.False(t, g.ModuleAt(0, 1))
	assert.True(t, g.ModuleAt(1, 1))
	assert.Equal(t, 2, g.Dark())
}

func Test_NewGrid_copiesInput(t *testing.T) {
	rows := [][]bool{{false}}
	g, err := NewGrid(rows)
	require.NoError(t, err)

	rows[0][0] = true
	assert.False(t, g.ModuleAt(0, 0))
}

func Test_NewGrid_invalid(t *testing.T) {
	tests := []struct {
		name string
		rows [][]bool
	}{
		{name: "nil", rows: nil},
		{name: "empty", rows: [][]bool{}},
		{name: "short row", rows: [][]bool{{true, true}, {true}}},
		{name: "wide", rows: [][]bool{{true, true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.rows)
			assert.True(t, errors.Is(err, ErrInvalidGrid))
		})
	}
}

func Test_JoinInputs(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		want    string
		wantErr error
	}{
		{name: "single", inputs: []string{"https://a.example"}, want: "https://a.example"},
		{name: "skips empty", inputs: []string{"a", "", "b", ""}, want: "a\nb"},
		{name: "keeps whitespace", inputs: []string{" ", "b"}, want: " \nb"},
		{name: "all empty", inputs: []string{"", ""}, wantErr: ErrEmptyInput},
		{name: "none", inputs: nil, wantErr: ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JoinInputs(tt.inputs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ParseLevel(t *testing.T) {
	tests := map[string]Level{
		"":        LevelLow,
		"low":     LevelLow,
		"M":       LevelMedium,
		"quart":   LevelQuart,
		" High ":  LevelHigh,
		"highest": LevelHigh,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("ultra")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func Test_Encode(t *testing.T) {
	g, err := Encode("https://github.com/yeqown/go-qrcode")
	require.NoError(t, err)

	// smallest symbol is version 1, 21 modules per side, growing by 4
	assert.GreaterOrEqual(t, g.Size(), 21)
	assert.Equal(t, 0, (g.Size()-21)%4)
	assert.Greater(t, g.Dark(), 0)

	// top-left finder pattern corner is always dark
	assert.True(t, g.ModuleAt(0, 0))
	assert.True(t, g.ModuleAt(6, 6))
	assert.False(t, g.ModuleAt(7, 7))
}

func Test_Encode_higherLevelNotSmaller(t *testing.T) {
	text := "https://example.com/some/longer/path?with=query&and=more"

	low, err := Encode(text, WithLevel(LevelLow))
	require.NoError(t, err)
	high, err := Encode(text, WithLevel(LevelHigh))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, high.Size(), low.Size())
}

func Test_Encode_deterministic(t *testing.T) {
	a, err := Encode("hello")
	require.NoError(t, err)
	b, err := Encode("hello")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func Test_Encode_textTooLong(t *testing.T) {
	g, err := Encode(strings.Repeat("a", 5000))
	assert.Error(t, err)
	assert.Nil(t, g)

	_, err = Encode(strings.Repeat("a", 3000), WithLevel(LevelHigh))
	assert.Error(t, err)
}
