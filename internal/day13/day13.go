// Package day13 orders distress signal packets.
package day13

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/vyevs/aoc2022/internal/input"
)

// Packet is either an integer or a list of packets.
type Packet struct {
	List  []Packet
	Int   int
	IsInt bool
}

// UnmarshalJSON accepts a non-negative integer or an array of packets.
func (p *Packet) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var list []Packet
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*p = Packet{List: list}
		if p.List == nil {
			p.List = []Packet{}
		}
		return nil
	}

	if bytes.Equal(b, []byte("null")) {
		return errors.New("null is not a packet")
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("negative value %d", n)
	}
	*p = Packet{Int: n, IsInt: true}
	return nil
}

func (p Packet) String() string {
	if p.IsInt {
		return strconv.Itoa(p.Int)
	}
	parts := make([]string, 0, len(p.List))
	for _, e := range p.List {
		parts = append(parts, e.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// ParsePacket reads a single packet line. The top level value must be a list.
func ParsePacket(s string) (Packet, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") {
		return Packet{}, input.Malformed("packet %q is not a list", s)
	}

	var p Packet
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return Packet{}, input.Malformed("packet %q: %v", s, err)
	}
	return p, nil
}

func list(ps ...Packet) Packet {
	return Packet{List: ps}
}

// Compare returns a negative number when a comes before b, a positive one when it
// comes after, and 0 when neither decides.
func Compare(a, b Packet) int {
	switch {
	case a.IsInt && b.IsInt:
		return a.Int - b.Int
	case a.IsInt:
		return Compare(list(a), b)
	case b.IsInt:
		return Compare(a, list(b))
	}

	for i := range min(len(a.List), len(b.List)) {
		if c := Compare(a.List[i], b.List[i]); c != 0 {
			return c
		}
	}
	return len(a.List) - len(b.List)
}

// SumOrderedPairs sums the indices, counting from 1, of the pairs already in the right order.
func SumOrderedPairs(in string) (int, error) {
	var sum int
	for i, block := range input.Blocks(in) {
		lines := input.Lines(block)
		if len(lines) != 2 {
			return 0, input.Malformed("pair %d has %d packets", i+1, len(lines))
		}

		left, err := ParsePacket(lines[0])
		if err != nil {
			return 0, fmt.Errorf("pair %d: %w", i+1, err)
		}
		right, err := ParsePacket(lines[1])
		if err != nil {
			return 0, fmt.Errorf("pair %d: %w", i+1, err)
		}

		if Compare(left, right) < 0 {
			sum += i + 1
		}
	}

	return sum, nil
}

// DecoderKey sorts every packet along with the [[2]] and [[6]] divider packets and
// multiplies the positions, counting from 1, of the dividers.
func DecoderKey(in string) (int, error) {
	dividers := [2]Packet{
		list(list(Packet{Int: 2, IsInt: true})),
		list(list(Packet{Int: 6, IsInt: true})),
	}

	packets := slices.Clone(dividers[:])
	for i, line := range input.Lines(in) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, err := ParsePacket(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		packets = append(packets, p)
	}

	Sort(packets)

	key := 1
	for _, d := range dividers {
		i := slices.IndexFunc(packets, func(p Packet) bool { return Compare(p, d) == 0 })
		key *= i + 1
	}

	return key, nil
}

// Sort orders packets in place.
func Sort(packets []Packet) {
	slices.SortStableFunc(packets, Compare)
}
