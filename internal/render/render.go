// Package render colors terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/vyevs/ansi"
)

// Colors cycled through for the two parts of a day.
var partColors = [2]string{"cyan", "yellow"}

// Painter writes plain text unless Color is set.
type Painter struct {
	Color bool
}

// Paint wraps s in the named foreground color.
func (p Painter) Paint(color, s string) string {
	if !p.Color || s == "" {
		return s
	}
	return ansi.FGColorName(color) + s + ansi.Clear
}

// Label is the "Day N.P result:" prefix of an answer.
func (p Painter) Label(day, part int) string {
	label := fmt.Sprintf("Day %d.%d result:", day, part)
	return p.Paint(partColors[(part-1)%len(partColors)], label)
}

// Answer formats an answer line. Multi-line answers start on their own line.
func (p Painter) Answer(day, part int, answer string) string {
	if strings.Contains(answer, "\n") {
		return p.Label(day, part) + "\n" + p.Screen(answer)
	}
	return p.Label(day, part) + " " + answer + "\n"
}

// Screen draws a CRT style image, lit '#' pixels in green and the rest dimmed.
func (p Painter) Screen(img string) string {
	if !p.Color {
		if !strings.HasSuffix(img, "\n") {
			img += "\n"
		}
		return img
	}

	var b strings.Builder
	b.Grow(len(img) * 4)

	cur := ""
	for i := 0; i < len(img); i++ {
		c := img[i]
		if c == '\n' {
			b.WriteByte(c)
			continue
		}

		color := "light gray"
		if c == '#' {
			color = "green"
		}
		if color != cur {
			b.WriteString(ansi.FGColorName(color))
			cur = color
		}
		b.WriteByte(c)
	}

	b.WriteString(ansi.Clear)
	if !strings.HasSuffix(img, "\n") {
		b.WriteByte('\n')
	}

	return b.String()
}
