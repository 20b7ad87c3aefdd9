package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyevs/aoc2022/internal/input"
)

const example = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8`

func TestFullyContained(t *testing.T) {
	got, err := FullyContained(example)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestOverlapping(t *testing.T) {
	got, err := Overlapping(example)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestSimpleOverlapping(t *testing.T) {
	tests := []struct {
		pair string
		want int
	}{
		{"2-4,6-8", 0},
		{"5-7,7-9", 1},
		{"6-6,4-6", 1},
		{"2-6,4-8", 1},
		{"2-8,3-7", 1},
	}

	for _, tt := range tests {
		t.Run(tt.pair, func(t *testing.T) {
			got, err := Overlapping(tt.pair)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"2-4", "2-4,6", "a-4,6-8"} {
		_, err := Overlapping(in)
		assert.ErrorIs(t, err, input.ErrMalformed, in)
	}
}
