// Package day02 scores a rock paper scissors strategy guide.
package day02

import (
	"strings"

	"github.com/vyevs/aoc2022/internal/input"
)

type shape int

const (
	rock shape = iota
	paper
	scissors
)

// beats returns the shape that s wins against.
func (s shape) beats() shape {
	return (s + 2) % 3
}

// losesTo returns the shape that wins against s.
func (s shape) losesTo() shape {
	return (s + 1) % 3
}

func (s shape) score() int {
	return int(s) + 1
}

type outcome int

const (
	lose outcome = iota
	draw
	win
)

func (o outcome) score() int {
	return int(o) * 3
}

func play(opponent, me shape) outcome {
	switch {
	case me == opponent:
		return draw
	case me.beats() == opponent:
		return win
	}
	return lose
}

// ScoreByShape reads the second column as the shape to play.
func ScoreByShape(in string) (int, error) {
	return score(in, func(opponent shape, col byte) int {
		me := shape(col - 'X')
		return me.score() + play(opponent, me).score()
	})
}

// ScoreByOutcome reads the second column as the outcome to reach.
func ScoreByOutcome(in string) (int, error) {
	return score(in, func(opponent shape, col byte) int {
		want := outcome(col - 'X')

		me := opponent
		switch want {
		case win:
			me = opponent.losesTo()
		case lose:
			me = opponent.beats()
		}
		return me.score() + want.score()
	})
}

func score(in string, round func(opponent shape, col byte) int) (int, error) {
	var total int
	for i, line := range input.Lines(in) {
		opp, mine, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || len(opp) != 1 || len(mine) != 1 {
			return 0, input.Malformed("line %d: %q", i+1, line)
		}
		if opp[0] < 'A' || opp[0] > 'C' {
			return 0, input.Malformed("line %d: unknown opponent play %q", i+1, opp)
		}
		if mine[0] < 'X' || mine[0] > 'Z' {
			return 0, input.Malformed("line %d: unknown instruction %q", i+1, mine)
		}

		total += round(shape(opp[0]-'A'), mine[0])
	}

	return total, nil
}
