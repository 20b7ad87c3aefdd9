// Package day15 reasons about the areas covered by beacon sensors.
package day15

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vyevs/aoc2022/internal/grid"
	"github.com/vyevs/aoc2022/internal/input"
)

var ErrNotFound = errors.New("distress beacon not found")

const sensorFormat = "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d"

// Sensor covers every point no further from it than its closest beacon.
type Sensor struct {
	Pos, Beacon grid.Pt
	Radius      int
}

func ParseSensors(in string) ([]Sensor, error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, input.Malformed("no sensors")
	}

	sensors := make([]Sensor, 0, len(lines))
	for i, line := range lines {
		var s Sensor
		n, err := fmt.Sscanf(line, sensorFormat, &s.Pos.X, &s.Pos.Y, &s.Beacon.X, &s.Beacon.Y)
		if err != nil || n != 4 {
			return nil, input.Malformed("line %d: %q", i+1, line)
		}
		s.Radius = s.Pos.MDist(s.Beacon)
		sensors = append(sensors, s)
	}

	return sensors, nil
}

// span is an inclusive range of x.
type span struct {
	from, to int
}

// coverage returns the merged, sorted spans of row covered by the sensors.
func coverage(sensors []Sensor, row int) []span {
	var spans []span
	for _, s := range sensors {
		reach := s.Radius - grid.Abs(row-s.Pos.Y)
		if reach < 0 {
			continue
		}
		spans = append(spans, span{s.Pos.X - reach, s.Pos.X + reach})
	}

	slices.SortFunc(spans, func(a, b span) int { return a.from - b.from })

	var merged []span
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp.from <= merged[n-1].to+1 {
			merged[n-1].to = max(merged[n-1].to, sp.to)
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// NoBeaconPositions counts the positions on row where a beacon cannot be.
func NoBeaconPositions(in string, row int) (int, error) {
	sensors, err := ParseSensors(in)
	if err != nil {
		return 0, err
	}

	var n int
	spans := coverage(sensors, row)
	for _, sp := range spans {
		n += sp.to - sp.from + 1
	}

	// Known beacons on the row are not counted, each one once.
	seen := make(map[int]bool)
	for _, s := range sensors {
		b := s.Beacon
		if b.Y != row || seen[b.X] {
			continue
		}
		seen[b.X] = true
		for _, sp := range spans {
			if b.X >= sp.from && b.X <= sp.to {
				n--
				break
			}
		}
	}

	return n, nil
}

// TuningFrequency finds the one point with both coordinates in [0, size] that no
// sensor covers and returns x*4000000 + y.
func TuningFrequency(in string, size int) (int, error) {
	sensors, err := ParseSensors(in)
	if err != nil {
		return 0, err
	}

	p, ok := findGap(sensors, size)
	if !ok {
		return 0, ErrNotFound
	}
	return p.X*4000000 + p.Y, nil
}

func findGap(sensors []Sensor, size int) (grid.Pt, bool) {
	for y := 0; y <= size; y++ {
		x := 0
		for _, sp := range coverage(sensors, y) {
			if sp.to < x {
				continue
			}
			if sp.from > x {
				break
			}
			x = sp.to + 1
		}
		if x <= size {
			return grid.Pt{X: x, Y: y}, true
		}
	}
	return grid.Pt{}, false
}
