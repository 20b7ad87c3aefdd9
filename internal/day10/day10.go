// Package day10 runs the handheld device's CPU and draws its CRT.
package day10

import (
	"fmt"
	"strings"

	"github.com/vyevs/aoc2022/internal/input"
)

const (
	ScreenWidth  = 40
	ScreenHeight = 6
)

type opcode int

const (
	noop opcode = iota
	addx
)

// cycles is how long each opcode takes to complete.
var cycles = [...]int{noop: 1, addx: 2}

type instruction struct {
	op  opcode
	arg int
}

func parseProgram(in string) ([]instruction, error) {
	lines := input.Lines(in)
	prog := make([]instruction, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 1 && fields[0] == "noop":
			prog = append(prog, instruction{op: noop})
		case len(fields) == 2 && fields[0] == "addx":
			v, err := input.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			prog = append(prog, instruction{op: addx, arg: v})
		default:
			return nil, input.Malformed("line %d: unknown instruction %q", i+1, line)
		}
	}

	return prog, nil
}

// CPU has a single register X, starting at 1.
type CPU struct {
	X int

	prog []instruction
	pc   int
	// busy counts the cycles already spent on prog[pc].
	busy int
}

func NewCPU(in string) (*CPU, error) {
	prog, err := parseProgram(in)
	if err != nil {
		return nil, err
	}
	return &CPU{X: 1, prog: prog}, nil
}

// Run executes n cycles. during is called for every cycle, counting from 1, with the
// value X holds during that cycle. Once the program is over, X keeps its last value.
func (c *CPU) Run(n int, during func(cycle, x int)) {
	for cycle := 1; cycle <= n; cycle++ {
		during(cycle, c.X)
		c.tick()
	}
}

// tick finishes one cycle.
func (c *CPU) tick() {
	if c.pc >= len(c.prog) {
		return
	}

	in := c.prog[c.pc]
	c.busy++
	if c.busy < cycles[in.op] {
		return
	}

	if in.op == addx {
		c.X += in.arg
	}
	c.pc++
	c.busy = 0
}

// SignalStrength sums cycle * X during the 20th cycle and every 40 cycles after that, up to 220.
func SignalStrength(in string) (int, error) {
	cpu, err := NewCPU(in)
	if err != nil {
		return 0, err
	}

	var sum int
	cpu.Run(220, func(cycle, x int) {
		if (cycle-20)%40 == 0 {
			sum += cycle * x
		}
	})
	return sum, nil
}

// Render draws the CRT: a pixel is lit when the 3 pixel wide sprite centered on X covers it.
func Render(in string) (string, error) {
	cpu, err := NewCPU(in)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(ScreenHeight * (ScreenWidth + 1))

	cpu.Run(ScreenWidth*ScreenHeight, func(cycle, x int) {
		col := (cycle - 1) % ScreenWidth
		if col >= x-1 && col <= x+1 {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
		if col == ScreenWidth-1 {
			b.WriteByte('\n')
		}
	})

	return b.String(), nil
}
