package day14

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyevs/aoc2022/internal/input"
)

const example = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9`

func TestRestingSand(t *testing.T) {
	tests := []struct {
		name  string
		floor bool
		want  int
	}{
		{"abyss", false, 24},
		{"floor", true, 93},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RestingSand(example, tt.floor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaveDraw(t *testing.T) {
	cave, err := ParseCave(example)
	require.NoError(t, err)
	assert.Equal(t, 24, cave.Fill())

	want := strings.Join([]string{
		"..........",
		"..........",
		"......o...",
		".....ooo..",
		"....#ooo##",
		"...o#ooo#.",
		"..###ooo#.",
		"....oooo#.",
		".o.ooooo#.",
		"#########.",
	}, "\n") + "\n"
	assert.Equal(t, want, cave.draw())
}

func TestSourceBlocked(t *testing.T) {
	// A ledge under the source holds a single unit before sand spills over its edge.
	got, err := RestingSand("499,2 -> 501,2", false)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// With a floor the pile grows until it reaches the source.
	got, err = RestingSand("499,2 -> 501,2", true)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestMalformed(t *testing.T) {
	tests := []string{
		"",
		"498,4 -> 500,6",
		"498 -> 498,6",
		"498,x -> 498,6",
		"498,-1 -> 498,6",
	}
	for _, in := range tests {
		_, err := RestingSand(in, false)
		assert.ErrorIs(t, err, input.ErrMalformed, in)
	}
}

func BenchmarkRestingSandFloor(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RestingSand(example, true); err != nil {
			b.Fatalf("RestingSand failed: %v", err)
		}
	}
}
