// Package day11 follows monkeys throwing items around.
package day11

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vyevs/aoc2022/internal/input"
)

type opKind int

const (
	opAdd opKind = iota
	opMul
	opSquare
)

// Operation computes the new worry level of an inspected item.
type Operation struct {
	kind opKind
	arg  int
}

func (o Operation) Apply(old int) int {
	switch o.kind {
	case opAdd:
		return old + o.arg
	case opMul:
		return old * o.arg
	}
	return old * old
}

type Monkey struct {
	Items     []int
	Op        Operation
	Divisor   int
	IfTrue    int
	IfFalse   int
	Inspected int
}

// The lines of a monkey block, in order, without their values.
var monkeyPrefixes = [...]string{
	"Monkey ",
	"Starting items:",
	"Operation: new = old ",
	"Test: divisible by ",
	"If true: throw to monkey ",
	"If false: throw to monkey ",
}

func parseMonkeys(in string) ([]*Monkey, error) {
	blocks := input.Blocks(in)
	monkeys := make([]*Monkey, 0, len(blocks))
	for i, block := range blocks {
		m, err := parseMonkey(block)
		if err != nil {
			return nil, fmt.Errorf("monkey %d: %w", i, err)
		}
		monkeys = append(monkeys, m)
	}

	for i, m := range monkeys {
		for _, target := range [2]int{m.IfTrue, m.IfFalse} {
			if target < 0 || target >= len(monkeys) || target == i {
				return nil, input.Malformed("monkey %d throws to monkey %d", i, target)
			}
		}
	}

	return monkeys, nil
}

func parseMonkey(block string) (*Monkey, error) {
	lines := input.Lines(block)
	if len(lines) != len(monkeyPrefixes) {
		return nil, input.Malformed("%d lines, want %d", len(lines), len(monkeyPrefixes))
	}

	var values [len(monkeyPrefixes)]string
	for i, prefix := range monkeyPrefixes {
		v, ok := strings.CutPrefix(strings.TrimSpace(lines[i]), prefix)
		if !ok {
			return nil, input.Malformed("%q does not start with %q", lines[i], prefix)
		}
		values[i] = strings.TrimSpace(v)
	}

	var m Monkey
	var err error
	if !strings.HasSuffix(values[0], ":") {
		return nil, input.Malformed("monkey header %q", lines[0])
	}
	if values[1] != "" {
		if m.Items, err = input.Ints(values[1], ","); err != nil {
			return nil, err
		}
	}
	if m.Op, err = parseOperation(values[2]); err != nil {
		return nil, err
	}
	if m.Divisor, err = input.Atoi(values[3]); err != nil {
		return nil, err
	}
	if m.Divisor <= 0 {
		return nil, input.Malformed("divisor %d", m.Divisor)
	}
	if m.IfTrue, err = input.Atoi(values[4]); err != nil {
		return nil, err
	}
	if m.IfFalse, err = input.Atoi(values[5]); err != nil {
		return nil, err
	}

	return &m, nil
}

// parseOperation reads the part after "new = old ", like "* 19", "+ 6" or "* old".
func parseOperation(s string) (Operation, error) {
	operator, operand, ok := strings.Cut(s, " ")
	if !ok {
		return Operation{}, input.Malformed("operation %q", s)
	}

	if operand == "old" {
		switch operator {
		case "*":
			return Operation{kind: opSquare}, nil
		case "+":
			// old + old
			return Operation{kind: opMul, arg: 2}, nil
		}
		return Operation{}, input.Malformed("operation %q", s)
	}

	n, err := input.Atoi(operand)
	if err != nil {
		return Operation{}, err
	}
	switch operator {
	case "*":
		return Operation{kind: opMul, arg: n}, nil
	case "+":
		return Operation{kind: opAdd, arg: n}, nil
	}
	return Operation{}, input.Malformed("operation %q", s)
}

// MonkeyBusiness plays rounds and multiplies the inspection counts of the two most active monkeys.
// With relief, worry levels are divided by 3 after every inspection. Without it they are kept
// modulo the product of all divisors, which preserves every divisibility test.
func MonkeyBusiness(in string, rounds int, relief bool) (int, error) {
	monkeys, err := parseMonkeys(in)
	if err != nil {
		return 0, err
	}
	if len(monkeys) < 2 {
		return 0, input.Malformed("%d monkeys, want at least 2", len(monkeys))
	}

	modulus := 1
	for _, m := range monkeys {
		modulus *= m.Divisor
	}

	for range rounds {
		playRound(monkeys, relief, modulus)
	}

	inspected := make([]int, 0, len(monkeys))
	for _, m := range monkeys {
		inspected = append(inspected, m.Inspected)
	}
	slices.Sort(inspected)
	slices.Reverse(inspected)

	return inspected[0] * inspected[1], nil
}

func playRound(monkeys []*Monkey, relief bool, modulus int) {
	for _, m := range monkeys {
		for _, item := range m.Items {
			worry := m.Op.Apply(item)
			if relief {
				worry /= 3
			} else {
				worry %= modulus
			}

			target := m.IfFalse
			if worry%m.Divisor == 0 {
				target = m.IfTrue
			}
			monkeys[target].Items = append(monkeys[target].Items, worry)
		}

		m.Inspected += len(m.Items)
		m.Items = m.Items[:0]
	}
}
