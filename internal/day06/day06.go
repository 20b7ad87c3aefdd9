// Package day06 finds markers in the communication device datastream.
package day06

import (
	"errors"

	"github.com/vyevs/aoc2022/internal/input"
)

const (
	PacketMarkerSize  = 4
	MessageMarkerSize = 14
)

var ErrNoMarker = errors.New("no marker found")

// MarkerEnd returns how many characters are read, counting from 1, once the last
// size characters are all different.
func MarkerEnd(in string, size int) (int, error) {
	in = input.Normalize(in)
	if size <= 0 {
		return 0, errors.New("marker size must be positive")
	}

	// Position at which each byte was last seen, plus one.
	var seen [256]int
	// Start of the window of distinct characters ending at i.
	start := 0
	for i := 0; i < len(in); i++ {
		c := in[i]
		if last := seen[c]; last > start {
			start = last
		}
		seen[c] = i + 1

		if i-start+1 == size {
			return i + 1, nil
		}
	}

	return 0, ErrNoMarker
}
