// Package day08 looks at the trees of a grid from outside and from inside.
package day08

import (
	"errors"

	"github.com/vyevs/aoc2022/internal/grid"
	"github.com/vyevs/aoc2022/internal/input"
)

var directions = [4]grid.Pt{grid.Up, grid.Down, grid.Left, grid.Right}

func parseForest(in string) (*grid.Grid[int], error) {
	g, err := grid.Parse(input.Lines(in), func(p grid.Pt, b byte) (int, error) {
		if b < '0' || b > '9' {
			return 0, input.Malformed("tree height %q at %v", b, p)
		}
		return int(b - '0'), nil
	})
	if err != nil && !errors.Is(err, input.ErrMalformed) {
		return nil, input.Malformed("%v", err)
	}
	return g, err
}

// VisibleTrees counts the trees that can be seen from at least one edge of the grid.
func VisibleTrees(in string) (int, error) {
	forest, err := parseForest(in)
	if err != nil {
		return 0, err
	}

	var ct int
	for r := 0; r < forest.Rows; r++ {
		for c := 0; c < forest.Cols; c++ {
			p := grid.Pt{X: c, Y: r}
			for _, d := range directions {
				if _, edge := look(forest, p, d); edge {
					ct++
					break
				}
			}
		}
	}

	return ct, nil
}

// MaxScenicScore returns the highest product of viewing distances in all four directions.
func MaxScenicScore(in string) (int, error) {
	forest, err := parseForest(in)
	if err != nil {
		return 0, err
	}

	var best int
	for r := 0; r < forest.Rows; r++ {
		for c := 0; c < forest.Cols; c++ {
			p := grid.Pt{X: c, Y: r}
			score := 1
			for _, d := range directions {
				dist, _ := look(forest, p, d)
				score *= dist
			}
			best = max(best, score)
		}
	}

	return best, nil
}

// look walks from p in direction d. It returns how many trees are seen before the
// view is blocked, and whether the view reaches the edge of the grid.
func look(forest *grid.Grid[int], p grid.Pt, d grid.Pt) (int, bool) {
	height := forest.At(p)

	var dist int
	for q := p.Add(d); forest.In(q); q = q.Add(d) {
		dist++
		if forest.At(q) >= height {
			return dist, false
		}
	}
	return dist, true
}
