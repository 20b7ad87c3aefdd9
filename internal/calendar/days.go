// Package calendar registers the puzzle of every day and runs them over their inputs.
package calendar

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/vyevs/aoc2022/internal/config"
	"github.com/vyevs/aoc2022/internal/day01"
	"github.com/vyevs/aoc2022/internal/day02"
	"github.com/vyevs/aoc2022/internal/day03"
	"github.com/vyevs/aoc2022/internal/day04"
	"github.com/vyevs/aoc2022/internal/day05"
	"github.com/vyevs/aoc2022/internal/day06"
	"github.com/vyevs/aoc2022/internal/day07"
	"github.com/vyevs/aoc2022/internal/day08"
	"github.com/vyevs/aoc2022/internal/day09"
	"github.com/vyevs/aoc2022/internal/day10"
	"github.com/vyevs/aoc2022/internal/day11"
	"github.com/vyevs/aoc2022/internal/day12"
	"github.com/vyevs/aoc2022/internal/day13"
	"github.com/vyevs/aoc2022/internal/day14"
	"github.com/vyevs/aoc2022/internal/day15"
)

var ErrUnknownDay = errors.New("unknown day")

//go:embed samples/*.txt
var samples embed.FS

// Part solves one half of a day's puzzle.
type Part func(in string, p config.Days) (string, error)

// Sample is a worked example with its known answers.
type Sample struct {
	Input        string
	Want1, Want2 string
	// Params adjusts the puzzle parameters for the smaller example, if needed.
	Params func(p *config.Days)
}

type Day struct {
	Number       int
	Title        string
	Part1, Part2 Part
	Sample       Sample
}

// Parts returns both parts in order.
func (d Day) Parts() [2]Part {
	return [2]Part{d.Part1, d.Part2}
}

// number adapts a solver with an integer answer.
func number(solve func(string) (int, error)) Part {
	return func(in string, _ config.Days) (string, error) {
		n, err := solve(in)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}
}

func numberWith(solve func(string, config.Days) (int, error)) Part {
	return func(in string, p config.Days) (string, error) {
		n, err := solve(in, p)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}
}

func text(solve func(string) (string, error)) Part {
	return func(in string, _ config.Days) (string, error) {
		return solve(in)
	}
}

func sample(day int) string {
	bs, err := samples.ReadFile(fmt.Sprintf("samples/day_%d.txt", day))
	if err != nil {
		panic(fmt.Sprintf("missing sample for day %d: %v", day, err))
	}
	return string(bs)
}

const crtSample = `##..##..##..##..##..##..##..##..##..##..
###...###...###...###...###...###...###.
####....####....####....####....####....
#####.....#####.....#####.....#####.....
######......######......######......####
#######.......#######.......#######.....
`

var days = []Day{
	{
		Number: 1,
		Title:  "Calorie Counting",
		Part1:  number(day01.MaxCalories),
		Part2:  number(day01.TopThreeCalories),
		Sample: Sample{Input: sample(1), Want1: "24000", Want2: "45000"},
	},
	{
		Number: 2,
		Title:  "Rock Paper Scissors",
		Part1:  number(day02.ScoreByShape),
		Part2:  number(day02.ScoreByOutcome),
		Sample: Sample{Input: sample(2), Want1: "15", Want2: "12"},
	},
	{
		Number: 3,
		Title:  "Rucksack Reorganization",
		Part1:  number(day03.SumPriorities),
		Part2:  number(day03.SumBadgePriorities),
		Sample: Sample{Input: sample(3), Want1: "157", Want2: "70"},
	},
	{
		Number: 4,
		Title:  "Camp Cleanup",
		Part1:  number(day04.FullyContained),
		Part2:  number(day04.Overlapping),
		Sample: Sample{Input: sample(4), Want1: "2", Want2: "4"},
	},
	{
		Number: 5,
		Title:  "Supply Stacks",
		Part1: text(func(in string) (string, error) {
			return day05.TopCrates(in, day05.CrateMover9000)
		}),
		Part2: text(func(in string) (string, error) {
			return day05.TopCrates(in, day05.CrateMover9001)
		}),
		Sample: Sample{Input: sample(5), Want1: "CMZ", Want2: "MCD"},
	},
	{
		Number: 6,
		Title:  "Tuning Trouble",
		Part1: number(func(in string) (int, error) {
			return day06.MarkerEnd(in, day06.PacketMarkerSize)
		}),
		Part2: number(func(in string) (int, error) {
			return day06.MarkerEnd(in, day06.MessageMarkerSize)
		}),
		Sample: Sample{Input: sample(6), Want1: "7", Want2: "19"},
	},
	{
		Number: 7,
		Title:  "No Space Left On Device",
		Part1: numberWith(func(in string, p config.Days) (int, error) {
			return day07.SumSmallDirs(in, p.Day7.SmallDirLimit)
		}),
		Part2: numberWith(func(in string, p config.Days) (int, error) {
			return day07.SmallestDirToFree(in, p.Day7.DiskSize, p.Day7.NeededSpace)
		}),
		Sample: Sample{Input: sample(7), Want1: "95437", Want2: "24933642"},
	},
	{
		Number: 8,
		Title:  "Treetop Tree House",
		Part1:  number(day08.VisibleTrees),
		Part2:  number(day08.MaxScenicScore),
		Sample: Sample{Input: sample(8), Want1: "21", Want2: "8"},
	},
	{
		Number: 9,
		Title:  "Rope Bridge",
		Part1: number(func(in string) (int, error) {
			return day09.TailPositions(in, 2)
		}),
		Part2: number(func(in string) (int, error) {
			return day09.TailPositions(in, 10)
		}),
		Sample: Sample{Input: sample(9), Want1: "13", Want2: "1"},
	},
	{
		Number: 10,
		Title:  "Cathode-Ray Tube",
		Part1:  number(day10.SignalStrength),
		Part2:  text(day10.Render),
		Sample: Sample{Input: sample(10), Want1: "13140", Want2: crtSample},
	},
	{
		Number: 11,
		Title:  "Monkey in the Middle",
		Part1: numberWith(func(in string, p config.Days) (int, error) {
			return day11.MonkeyBusiness(in, p.Day11.CalmRounds, true)
		}),
		Part2: numberWith(func(in string, p config.Days) (int, error) {
			return day11.MonkeyBusiness(in, p.Day11.WorriedRounds, false)
		}),
		Sample: Sample{Input: sample(11), Want1: "10605", Want2: "2713310158"},
	},
	{
		Number: 12,
		Title:  "Hill Climbing Algorithm",
		Part1:  number(day12.FewestSteps),
		Part2:  number(day12.FewestStepsFromLowest),
		Sample: Sample{Input: sample(12), Want1: "31", Want2: "29"},
	},
	{
		Number: 13,
		Title:  "Distress Signal",
		Part1:  number(day13.SumOrderedPairs),
		Part2:  number(day13.DecoderKey),
		Sample: Sample{Input: sample(13), Want1: "13", Want2: "140"},
	},
	{
		Number: 14,
		Title:  "Regolith Reservoir",
		Part1: number(func(in string) (int, error) {
			return day14.RestingSand(in, false)
		}),
		Part2: number(func(in string) (int, error) {
			return day14.RestingSand(in, true)
		}),
		Sample: Sample{Input: sample(14), Want1: "24", Want2: "93"},
	},
	{
		Number: 15,
		Title:  "Beacon Exclusion Zone",
		Part1: numberWith(func(in string, p config.Days) (int, error) {
			return day15.NoBeaconPositions(in, p.Day15.Row)
		}),
		Part2: numberWith(func(in string, p config.Days) (int, error) {
			return day15.TuningFrequency(in, p.Day15.SearchSize)
		}),
		Sample: Sample{
			Input: sample(15),
			Want1: "26",
			Want2: "56000011",
			Params: func(p *config.Days) {
				p.Day15.Row = 10
				p.Day15.SearchSize = 20
			},
		},
	},
}

// Days returns every registered day in order.
func Days() []Day {
	return slices.Clone(days)
}

func Lookup(n int) (Day, error) {
	for _, d := range days {
		if d.Number == n {
			return d, nil
		}
	}
	return Day{}, fmt.Errorf("%w %d, have days 1 through %d", ErrUnknownDay, n, len(days))
}
