// Package input reads and splits puzzle inputs.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMalformed is wrapped by every error caused by input that does not follow a puzzle's format.
var ErrMalformed = errors.New("malformed input")

// Malformed returns an error wrapping ErrMalformed.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// Path returns the location of the input file for day inside dir.
func Path(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day_%d.txt", day))
}

// ReadDayFromFile uses ReadDay to read the input of day from dir.
func ReadDayFromFile(dir string, day int) (string, error) {
	f, err := os.Open(Path(dir, day))
	if err != nil {
		return "", fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()
	return ReadDay(f)
}

// ReadDay reads a whole puzzle input from r and normalizes it.
func ReadDay(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var b strings.Builder
	for sc.Scan() {
		b.WriteString(sc.Text())
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("scanner error: %v", err)
	}

	return Normalize(b.String()), nil
}

// Normalize turns CRLF line endings into LF and drops trailing newlines.
// Spaces are kept, some drawings are column aligned.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}

// Lines splits s into lines. Empty input has no lines.
func Lines(s string) []string {
	s = Normalize(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits s on blank lines.
func Blocks(s string) []string {
	s = Normalize(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n\n")
}

// Atoi parses a base 10 integer, ignoring surrounding spaces.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Malformed("invalid number %q", s)
	}
	return n, nil
}

// Ints parses every sep separated field of s as an integer.
func Ints(s, sep string) ([]int, error) {
	fields := strings.Split(s, sep)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
