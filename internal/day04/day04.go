// Package day04 compares the section assignments of cleanup pairs.
package day04

import (
	"fmt"
	"strings"

	"github.com/vyevs/aoc2022/internal/input"
)

// Interval is an inclusive range of section IDs.
type Interval struct {
	Lo, Hi int
}

// Contains reports whether o lies entirely within i.
func (i Interval) Contains(o Interval) bool {
	return i.Lo <= o.Lo && o.Hi <= i.Hi
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Lo <= o.Hi && o.Lo <= i.Hi
}

// FullyContained counts the pairs where one assignment contains the other.
func FullyContained(in string) (int, error) {
	return countPairs(in, func(a, b Interval) bool {
		return a.Contains(b) || b.Contains(a)
	})
}

// Overlapping counts the pairs whose assignments overlap at all.
func Overlapping(in string) (int, error) {
	return countPairs(in, Interval.Overlaps)
}

func countPairs(in string, match func(a, b Interval) bool) (int, error) {
	var ct int
	for i, line := range input.Lines(in) {
		first, second, ok := strings.Cut(line, ",")
		if !ok {
			return 0, input.Malformed("line %d: %q is not a pair", i+1, line)
		}

		a, err := parseInterval(first)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		b, err := parseInterval(second)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}

		if match(a, b) {
			ct++
		}
	}

	return ct, nil
}

func parseInterval(s string) (Interval, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Interval{}, input.Malformed("%q is not an interval", s)
	}

	var i Interval
	var err error
	if i.Lo, err = input.Atoi(lo); err != nil {
		return Interval{}, err
	}
	if i.Hi, err = input.Atoi(hi); err != nil {
		return Interval{}, err
	}
	return i, nil
}
