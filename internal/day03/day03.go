// Package day03 finds the items misplaced in rucksacks.
package day03

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vyevs/aoc2022/internal/input"
)

var ErrNoCommonItem = errors.New("no common item")

// Priority returns 1 through 26 for 'a' through 'z' and 27 through 52 for 'A' through 'Z'.
func Priority(item rune) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, input.Malformed("unknown item %q", item)
}

// SumPriorities sums the priority of the item found in both compartments of every rucksack.
func SumPriorities(in string) (int, error) {
	var sum int
	for i, line := range input.Lines(in) {
		left, right := line[:len(line)/2], line[len(line)/2:]

		p, err := commonPriority(left, right)
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		sum += p
	}

	return sum, nil
}

// SumBadgePriorities sums the priority of the badge shared by every group of three rucksacks.
func SumBadgePriorities(in string) (int, error) {
	lines := input.Lines(in)
	if len(lines)%3 != 0 {
		return 0, input.Malformed("%d rucksacks cannot be split in groups of three", len(lines))
	}

	var sum int
	for i := 0; i < len(lines); i += 3 {
		p, err := commonPriority(lines[i], lines[i+1], lines[i+2])
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i/3+1, err)
		}
		sum += p
	}

	return sum, nil
}

func commonPriority(first string, others ...string) (int, error) {
OUTER:
	for _, c := range first {
		for _, o := range others {
			if !strings.ContainsRune(o, c) {
				continue OUTER
			}
		}
		return Priority(c)
	}

	return 0, fmt.Errorf("%w in %q", ErrNoCommonItem, append([]string{first}, others...))
}
