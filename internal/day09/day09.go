// Package day09 simulates a rope of knots pulled around a plane.
package day09

import (
	"fmt"
	"strings"

	"github.com/vyevs/aoc2022/internal/grid"
	"github.com/vyevs/aoc2022/internal/input"
)

// Motion moves the head of the rope Steps times in Dir.
type Motion struct {
	Dir   grid.Pt
	Steps int
}

var directions = map[string]grid.Pt{
	// Up increases Y here, the rope lives on a plane rather than a grid.
	"U": grid.Down,
	"D": grid.Up,
	"L": grid.Left,
	"R": grid.Right,
}

func parseMotions(in string) ([]Motion, error) {
	lines := input.Lines(in)
	motions := make([]Motion, 0, len(lines))
	for i, line := range lines {
		dir, steps, ok := strings.Cut(line, " ")
		if !ok {
			return nil, input.Malformed("line %d: %q", i+1, line)
		}

		d, ok := directions[dir]
		if !ok {
			return nil, input.Malformed("line %d: unknown direction %q", i+1, dir)
		}
		n, err := input.Atoi(steps)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		motions = append(motions, Motion{Dir: d, Steps: n})
	}

	return motions, nil
}

// Rope is a chain of knots, head first.
type Rope []grid.Pt

func NewRope(knots int) Rope {
	return make(Rope, knots)
}

// Step moves the head once in d and lets every following knot catch up.
func (r Rope) Step(d grid.Pt) {
	r[0] = r[0].Add(d)
	for i := 1; i < len(r); i++ {
		if r[i].Touching(r[i-1]) {
			// The rest of the rope does not move either.
			return
		}
		r[i] = r[i].Toward(r[i-1])
	}
}

func (r Rope) Tail() grid.Pt {
	return r[len(r)-1]
}

// TailPositions counts the positions visited by the last of knots knots, starting point included.
func TailPositions(in string, knots int) (int, error) {
	if knots < 1 {
		return 0, fmt.Errorf("a rope needs at least one knot, got %d", knots)
	}

	motions, err := parseMotions(in)
	if err != nil {
		return 0, err
	}

	rope := NewRope(knots)
	visited := map[grid.Pt]struct{}{rope.Tail(): {}}
	for _, m := range motions {
		for range m.Steps {
			rope.Step(m.Dir)
			visited[rope.Tail()] = struct{}{}
		}
	}

	return len(visited), nil
}
