// Package day01 counts the calories carried by each elf.
package day01

import (
	"fmt"
	"slices"

	"github.com/vyevs/aoc2022/internal/input"
)

// MaxCalories returns the calories carried by the most loaded elf.
func MaxCalories(in string) (int, error) {
	totals, err := elfTotals(in)
	if err != nil {
		return 0, err
	}
	if len(totals) == 0 {
		return 0, nil
	}
	return slices.Max(totals), nil
}

// TopThreeCalories returns the calories carried by the three most loaded elves.
func TopThreeCalories(in string) (int, error) {
	totals, err := elfTotals(in)
	if err != nil {
		return 0, err
	}

	slices.Sort(totals)
	slices.Reverse(totals)

	var sum int
	for _, t := range totals[:min(3, len(totals))] {
		sum += t
	}
	return sum, nil
}

func elfTotals(in string) ([]int, error) {
	blocks := input.Blocks(in)

	totals := make([]int, 0, len(blocks))
	for i, block := range blocks {
		var total int
		for _, line := range input.Lines(block) {
			n, err := input.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("elf %d: %w", i+1, err)
			}
			total += n
		}
		totals = append(totals, total)
	}

	return totals, nil
}
