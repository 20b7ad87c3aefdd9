package day10

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyevs/aoc2022/internal/input"
)

func readExample(t testing.TB) string {
	t.Helper()
	bs, err := os.ReadFile("testdata/example.txt")
	if err != nil {
		t.Fatalf("failed to read example program: %v", err)
	}
	return string(bs)
}

func TestSignalStrength(t *testing.T) {
	got, err := SignalStrength(readExample(t))
	require.NoError(t, err)
	assert.Equal(t, 13140, got)
}

func TestRender(t *testing.T) {
	got, err := Render(readExample(t))
	require.NoError(t, err)

	const want = `##..##..##..##..##..##..##..##..##..##..
###...###...###...###...###...###...###.
####....####....####....####....####....
#####.....#####.....#####.....#####.....
######......######......######......####
#######.......#######.......#######.....
`
	assert.Equal(t, want, got)
}

func TestRun(t *testing.T) {
	cpu, err := NewCPU("noop\naddx 3\naddx -5")
	require.NoError(t, err)

	var xs []int
	cpu.Run(7, func(cycle, x int) {
		assert.Equal(t, len(xs)+1, cycle)
		xs = append(xs, x)
	})

	// X changes at the end of the second cycle of addx, then stays put once the program is over.
	assert.Equal(t, []int{1, 1, 1, 4, 4, -1, -1}, xs)
	assert.Equal(t, -1, cpu.X)
}

func TestParseProgram(t *testing.T) {
	prog, err := parseProgram("noop\naddx 1\naddx -1")
	require.NoError(t, err)
	assert.Equal(t, []instruction{{op: noop}, {op: addx, arg: 1}, {op: addx, arg: -1}}, prog)

	for _, in := range []string{"hello", "addx", "addx one", "noop 1"} {
		_, err := parseProgram(in)
		assert.ErrorIs(t, err, input.ErrMalformed, in)
	}
}

func BenchmarkRender(b *testing.B) {
	prog := readExample(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Render(prog); err != nil {
			b.Fatalf("Render failed: %v", err)
		}
	}
}
