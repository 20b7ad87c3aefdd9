// Package day14 pours sand into a cave of rock.
package day14

import (
	"fmt"
	"strings"

	"github.com/vyevs/aoc2022/internal/grid"
	"github.com/vyevs/aoc2022/internal/input"
)

// Source is where the sand enters the cave.
var Source = grid.Pt{X: 500, Y: 0}

type cell byte

const (
	air cell = iota
	rock
	sand
)

// Cave is the scanned slice of the cave. Y grows downwards.
type Cave struct {
	cells map[grid.Pt]cell
	// lowest is the largest Y of any rock.
	lowest int
	// floor is the Y of the cave floor, or 0 when there is none.
	floor int
}

// ParseCave reads rock paths of "x,y" points joined by " -> ".
func ParseCave(in string) (*Cave, error) {
	c := &Cave{cells: make(map[grid.Pt]cell)}

	for i, line := range input.Lines(in) {
		var path []grid.Pt
		for _, s := range strings.Split(line, " -> ") {
			xy, err := input.Ints(s, ",")
			if err != nil {
				return nil, fmt.Errorf("path %d: %w", i+1, err)
			}
			if len(xy) != 2 || xy[1] < 0 {
				return nil, input.Malformed("path %d: invalid point %q", i+1, s)
			}
			path = append(path, grid.Pt{X: xy[0], Y: xy[1]})
		}

		for j := 1; j < len(path); j++ {
			from, to := path[j-1], path[j]
			if from.X != to.X && from.Y != to.Y {
				return nil, input.Malformed("path %d: %v -> %v is not a straight line", i+1, from, to)
			}
			c.addRock(from, to)
		}
		if len(path) == 1 {
			c.addRock(path[0], path[0])
		}
	}

	return c, nil
}

func (c *Cave) addRock(from, to grid.Pt) {
	p := from
	for {
		c.cells[p] = rock
		c.lowest = max(c.lowest, p.Y)
		if p == to {
			return
		}
		p = p.Toward(to)
	}
}

func (c *Cave) blocked(p grid.Pt) bool {
	if c.floor > 0 && p.Y >= c.floor {
		return true
	}
	return c.cells[p] != air
}

// drop lets one unit of sand fall from Source. It returns where the sand rests,
// or false when it falls past every rock or the source is already blocked.
func (c *Cave) drop() (grid.Pt, bool) {
	if c.blocked(Source) {
		return grid.Pt{}, false
	}

	p := Source
	for {
		if c.floor == 0 && p.Y >= c.lowest {
			// Nothing below can stop it.
			return grid.Pt{}, false
		}

		moved := false
		for _, dx := range [3]int{0, -1, 1} {
			next := grid.Pt{X: p.X + dx, Y: p.Y + 1}
			if !c.blocked(next) {
				p = next
				moved = true
				break
			}
		}
		if !moved {
			c.cells[p] = sand
			return p, true
		}
	}
}

// Fill drops sand until it either falls into the abyss or blocks the source.
// It returns the number of units at rest.
func (c *Cave) Fill() int {
	var n int
	for {
		if _, ok := c.drop(); !ok {
			return n
		}
		n++
	}
}

// draw renders the cave around the rocks and the sand.
func (c *Cave) draw() string {
	minX, maxX, maxY := Source.X, Source.X, Source.Y
	for p := range c.cells {
		minX, maxX, maxY = min(minX, p.X), max(maxX, p.X), max(maxY, p.Y)
	}

	g := grid.New[cell](maxY+1, maxX-minX+1)
	for p, v := range c.cells {
		g.Set(grid.Pt{X: p.X - minX, Y: p.Y}, v)
	}
	return g.String(func(v cell) byte {
		return ".#o"[v]
	})
}

// RestingSand counts the units of sand that come to rest. Without a floor, the cave
// is bottomless below its lowest rock. With one, the floor lies two below the lowest
// rock and sand is poured until the source is blocked.
func RestingSand(in string, floor bool) (int, error) {
	cave, err := ParseCave(in)
	if err != nil {
		return 0, err
	}
	if len(cave.cells) == 0 {
		return 0, input.Malformed("no rock in the cave")
	}

	if floor {
		cave.floor = cave.lowest + 2
	}
	return cave.Fill(), nil
}
