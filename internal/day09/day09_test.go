package day09

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyevs/aoc2022/internal/grid"
	"github.com/vyevs/aoc2022/internal/input"
)

const example = `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2`

const largerExample = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20`

func TestTailPositions(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		knots int
		want  int
	}{
		{name: "short rope", in: example, knots: 2, want: 13},
		{name: "long rope", in: example, knots: 10, want: 1},
		{name: "long rope larger example", in: largerExample, knots: 10, want: 36},
		{name: "head only", in: "R 3", knots: 1, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TailPositions(tt.in, tt.knots)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMotions(t *testing.T) {
	got, err := parseMotions("R 4\nD 200")
	require.NoError(t, err)

	want := []Motion{{Dir: grid.Right, Steps: 4}, {Dir: grid.Up, Steps: 200}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseMotions mismatch (-want +got):\n%s", diff)
	}

	for _, in := range []string{"W 4", "R", "R four"} {
		_, err := parseMotions(in)
		assert.ErrorIs(t, err, input.ErrMalformed, in)
	}
}

func TestShortRopeStep(t *testing.T) {
	rope := NewRope(2)
	for range 4 {
		rope.Step(grid.Right)
	}
	assert.Equal(t, Rope{{X: 4, Y: 0}, {X: 3, Y: 0}}, rope)

	rope.Step(directions["U"])
	assert.Equal(t, Rope{{X: 4, Y: 1}, {X: 3, Y: 0}}, rope)

	rope.Step(directions["U"])
	assert.Equal(t, Rope{{X: 4, Y: 2}, {X: 4, Y: 1}}, rope)
}

func TestLongRopeStep(t *testing.T) {
	rope := NewRope(10)
	for range 4 {
		rope.Step(grid.Right)
	}
	assert.Equal(t, grid.Pt{X: 4, Y: 0}, rope[0])
	assert.Equal(t, grid.Pt{X: 3, Y: 0}, rope[1])
	assert.Equal(t, grid.Pt{X: 0, Y: 0}, rope.Tail())

	rope.Step(directions["U"])
	rope.Step(directions["U"])

	// ......
	// ....H.
	// .4321.
	// 5.....  (5 covers 6, 7, 8, 9, s)
	want := Rope{
		{X: 4, Y: 2}, {X: 4, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1},
		{}, {}, {}, {}, {},
	}
	assert.Equal(t, want, rope)
}

func TestNoKnots(t *testing.T) {
	_, err := TailPositions(example, 0)
	assert.Error(t, err)
}
