// Package day12 finds the shortest climb on a heightmap.
package day12

import (
	"errors"

	"github.com/vyevs/aoc2022/internal/grid"
	"github.com/vyevs/aoc2022/internal/input"
)

var ErrNoRoute = errors.New("no route to the destination")

// Heightmap holds elevations 0 ('a') through 25 ('z').
type Heightmap struct {
	Heights    *grid.Grid[int]
	Start, End grid.Pt
}

func ParseHeightmap(in string) (*Heightmap, error) {
	var starts, ends []grid.Pt

	g, err := grid.Parse(input.Lines(in), func(p grid.Pt, b byte) (int, error) {
		switch {
		case b >= 'a' && b <= 'z':
			return int(b - 'a'), nil
		case b == 'S':
			starts = append(starts, p)
			return 0, nil
		case b == 'E':
			ends = append(ends, p)
			return 'z' - 'a', nil
		}
		return 0, input.Malformed("invalid character %q at %v", b, p)
	})
	if err != nil {
		if errors.Is(err, input.ErrMalformed) {
			return nil, err
		}
		return nil, input.Malformed("%v", err)
	}

	if len(starts) != 1 || len(ends) != 1 {
		return nil, input.Malformed("found %d starts and %d ends, want one of each", len(starts), len(ends))
	}

	return &Heightmap{Heights: g, Start: starts[0], End: ends[0]}, nil
}

// FewestSteps returns the length of the shortest climb from S to E.
func FewestSteps(in string) (int, error) {
	hm, err := ParseHeightmap(in)
	if err != nil {
		return 0, err
	}

	dist := hm.descend()
	if d := dist.At(hm.Start); d >= 0 {
		return d, nil
	}
	return 0, ErrNoRoute
}

// FewestStepsFromLowest returns the length of the shortest climb to E from any square of elevation 'a'.
func FewestStepsFromLowest(in string) (int, error) {
	hm, err := ParseHeightmap(in)
	if err != nil {
		return 0, err
	}

	dist := hm.descend()

	best := -1
	for _, p := range hm.Heights.Find(func(h int) bool { return h == 0 }) {
		if d := dist.At(p); d >= 0 && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return 0, ErrNoRoute
	}
	return best, nil
}

// descend runs a breadth first search from E, stepping backwards along allowed climbs.
// The result holds the fewest steps from every square to E, -1 when E cannot be reached.
func (hm *Heightmap) descend() *grid.Grid[int] {
	heights := hm.Heights

	dist := grid.New[int](heights.Rows, heights.Cols)
	for r := 0; r < dist.Rows; r++ {
		for c := 0; c < dist.Cols; c++ {
			dist.Set(grid.Pt{X: c, Y: r}, -1)
		}
	}
	dist.Set(hm.End, 0)

	queue := []grid.Pt{hm.End}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, prev := range heights.Neighbors(cur) {
			if dist.At(prev) >= 0 {
				continue
			}
			// A climb from prev to cur is at most one unit up.
			if heights.At(cur) > heights.At(prev)+1 {
				continue
			}
			dist.Set(prev, dist.At(cur)+1)
			queue = append(queue, prev)
		}
	}

	return dist
}
