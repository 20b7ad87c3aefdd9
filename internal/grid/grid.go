// Package grid holds the 2D helpers shared by the map based puzzles.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a fixed size rectangle of cells addressed by Pt{X: column, Y: row}.
type Grid[T any] struct {
	Rows, Cols int

	cells []T
}

// New returns a rows x cols grid of zero values.
func New[T any](rows, cols int) *Grid[T] {
	return &Grid[T]{
		Rows:  rows,
		Cols:  cols,
		cells: make([]T, rows*cols),
	}
}

// Parse builds a grid from lines of equal length, converting every byte with conv.
func Parse[T any](lines []string, conv func(p Pt, b byte) (T, error)) (*Grid[T], error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	g := New[T](len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.Cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(line), g.Cols)
		}
		for c := 0; c < len(line); c++ {
			p := Pt{X: c, Y: r}
			v, err := conv(p, line[c])
			if err != nil {
				return nil, err
			}
			g.Set(p, v)
		}
	}

	return g, nil
}

// In reports whether p lies inside the grid.
func (g *Grid[T]) In(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Cols && p.Y < g.Rows
}

func (g *Grid[T]) At(p Pt) T {
	return g.cells[p.Y*g.Cols+p.X]
}

func (g *Grid[T]) Set(p Pt, v T) {
	g.cells[p.Y*g.Cols+p.X] = v
}

// Neighbors returns the orthogonal neighbors of p that are inside the grid.
func (g *Grid[T]) Neighbors(p Pt) []Pt {
	out := make([]Pt, 0, 4)
	for _, d := range [4]Pt{Up, Down, Left, Right} {
		if n := p.Add(d); g.In(n) {
			out = append(out, n)
		}
	}
	return out
}

// Find returns every point whose cell satisfies match, in row major order.
func (g *Grid[T]) Find(match func(T) bool) []Pt {
	var out []Pt
	for i, v := range g.cells {
		if match(v) {
			out = append(out, Pt{X: i % g.Cols, Y: i / g.Cols})
		}
	}
	return out
}

// String draws the grid one row per line using char for every cell.
func (g *Grid[T]) String(char func(T) byte) string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			b.WriteByte(char(g.At(Pt{X: c, Y: r})))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
