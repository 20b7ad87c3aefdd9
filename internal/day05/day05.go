// Package day05 rearranges stacks of crates.
package day05

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/vyevs/aoc2022/internal/input"
)

// CraneModel selects how a crane moves several crates at once.
type CraneModel int

const (
	// CrateMover9000 moves crates one at a time.
	CrateMover9000 CraneModel = iota
	// CrateMover9001 moves all the crates of a step together, keeping their order.
	CrateMover9001
)

// Stacks holds crates bottom first.
type Stacks [][]byte

type move struct {
	count, from, to int
}

// TopCrates rearranges the crates with model and returns the crate on top of each stack.
// Empty stacks contribute nothing.
func TopCrates(in string, model CraneModel) (string, error) {
	drawing, moves, ok := strings.Cut(input.Normalize(in), "\n\n")
	if !ok {
		return "", input.Malformed("no blank line between drawing and moves")
	}

	stacks, err := parseStacks(drawing)
	if err != nil {
		return "", err
	}

	for i, line := range input.Lines(moves) {
		m, err := parseMove(line)
		if err != nil {
			return "", fmt.Errorf("move %d: %w", i+1, err)
		}
		if err := stacks.apply(m, model); err != nil {
			return "", fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	return stacks.tops(), nil
}

// parseStacks reads a drawing whose last line numbers the stacks. Every stack
// takes 4 columns: "[X] ".
func parseStacks(drawing string) (Stacks, error) {
	lines := input.Lines(drawing)
	if len(lines) == 0 {
		return nil, input.Malformed("empty drawing")
	}

	numbers := strings.Fields(lines[len(lines)-1])
	if len(numbers) == 0 {
		return nil, input.Malformed("no stack numbers under the drawing")
	}
	for i, n := range numbers {
		if n != strconv.Itoa(i+1) {
			return nil, input.Malformed("stack %d is numbered %q", i+1, n)
		}
	}
	stacks := make(Stacks, len(numbers))

	// Walk from the bottom so the stacks end up bottom first.
	for r := len(lines) - 2; r >= 0; r-- {
		line := lines[r]
		for i := 1; i < len(line); i += 4 {
			c := line[i]
			if c == ' ' {
				continue
			}
			idx := i / 4
			if idx >= len(stacks) {
				return nil, input.Malformed("crate %q outside of the %d stacks", c, len(stacks))
			}
			stacks[idx] = append(stacks[idx], c)
		}
	}

	return stacks, nil
}

func parseMove(line string) (move, error) {
	var m move
	if _, err := fmt.Sscanf(line, "move %d from %d to %d", &m.count, &m.from, &m.to); err != nil {
		return move{}, input.Malformed("%q: %v", line, err)
	}
	return m, nil
}

func (s Stacks) apply(m move, model CraneModel) error {
	if m.from < 1 || m.from > len(s) || m.to < 1 || m.to > len(s) {
		return input.Malformed("no stack to move between %d and %d", m.from, m.to)
	}
	from, to := m.from-1, m.to-1
	if m.count > len(s[from]) {
		return input.Malformed("cannot move %d crates from a stack of %d", m.count, len(s[from]))
	}

	cut := len(s[from]) - m.count
	moving := slices.Clone(s[from][cut:])
	s[from] = s[from][:cut]

	if model == CrateMover9000 {
		slices.Reverse(moving)
	}
	s[to] = append(s[to], moving...)

	return nil
}

func (s Stacks) tops() string {
	var b strings.Builder
	for _, stack := range s {
		if len(stack) > 0 {
			b.WriteByte(stack[len(stack)-1])
		}
	}
	return b.String()
}
