package grid

import "golang.org/x/exp/constraints"

// Point is a position on a plane. Y grows downwards when a Point addresses a Grid.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Pt is the int Point used by most puzzles.
type Pt = Point[int]

// Unit steps. Up decreases Y, matching grid rows.
var (
	Up    = Pt{X: 0, Y: -1}
	Down  = Pt{X: 0, Y: 1}
	Left  = Pt{X: -1, Y: 0}
	Right = Pt{X: 1, Y: 0}
)

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// MDist returns the manhattan distance between p and q.
func (p Point[T]) MDist(q Point[T]) T {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Toward returns a point moving from p to q in max 1 step in the X
// and/or Y direction.
func (p Point[T]) Toward(q Point[T]) Point[T] {
	return Point[T]{X: p.X + Sign(q.X-p.X), Y: p.Y + Sign(q.Y-p.Y)}
}

// Touching reports whether p and q are the same point or adjacent, diagonals included.
func (p Point[T]) Touching(q Point[T]) bool {
	return Abs(p.X-q.X) <= 1 && Abs(p.Y-q.Y) <= 1
}
