// Package day07 measures directories from a terminal transcript.
package day07

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/vyevs/aoc2022/internal/input"
)

var ErrNoCandidate = errors.New("no directory frees enough space")

// Sizes maps every directory path ("/", "/a", "/a/e") to the total size of the files beneath it.
type Sizes map[string]int

// ParseSizes replays the cd and ls commands of a transcript.
func ParseSizes(in string) (Sizes, error) {
	sizes := Sizes{"/": 0}
	files := make(map[string]bool)
	var cwd []string

	for i, line := range input.Lines(in) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch {
		case fields[0] == "$" && len(fields) >= 2 && fields[1] == "ls":
			// The listing follows.

		case fields[0] == "$" && len(fields) == 3 && fields[1] == "cd":
			switch dir := fields[2]; dir {
			case "/":
				cwd = cwd[:0]
			case "..":
				if len(cwd) == 0 {
					return nil, input.Malformed("line %d: cd .. from /", i+1)
				}
				cwd = cwd[:len(cwd)-1]
			default:
				cwd = append(cwd, dir)
				if _, ok := sizes[dirPath(cwd)]; !ok {
					sizes[dirPath(cwd)] = 0
				}
			}

		case fields[0] == "$":
			return nil, input.Malformed("line %d: unknown command %q", i+1, line)

		case fields[0] == "dir" && len(fields) == 2:
			sub := dirPath(append(cwd[:len(cwd):len(cwd)], fields[1]))
			if _, ok := sizes[sub]; !ok {
				sizes[sub] = 0
			}

		case len(fields) == 2:
			size, err := input.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			// A directory listed again shows the same files.
			file := path.Join(dirPath(cwd), fields[1])
			if files[file] {
				continue
			}
			files[file] = true
			// The file counts towards every directory up to the root.
			for d := len(cwd); d >= 0; d-- {
				sizes[dirPath(cwd[:d])] += size
			}

		default:
			return nil, input.Malformed("line %d: %q", i+1, line)
		}
	}

	return sizes, nil
}

func dirPath(parts []string) string {
	return "/" + strings.Join(parts, "/")
}

// SumSmallDirs sums the sizes of the directories of at most limit.
func SumSmallDirs(in string, limit int) (int, error) {
	sizes, err := ParseSizes(in)
	if err != nil {
		return 0, err
	}

	var sum int
	for _, size := range sizes {
		if size <= limit {
			sum += size
		}
	}
	return sum, nil
}

// SmallestDirToFree returns the size of the smallest directory whose deletion
// leaves at least needed unused space on a disk of diskSize.
func SmallestDirToFree(in string, diskSize, needed int) (int, error) {
	sizes, err := ParseSizes(in)
	if err != nil {
		return 0, err
	}

	maxUsed := diskSize - needed
	used := sizes["/"]

	best := -1
	for _, size := range sizes {
		if used-size <= maxUsed && (best < 0 || size < best) {
			best = size
		}
	}
	if best < 0 {
		return 0, ErrNoCandidate
	}
	return best, nil
}
