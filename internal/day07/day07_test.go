package day07

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyevs/aoc2022/internal/input"
)

const example = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k`

func TestParseSizes(t *testing.T) {
	got, err := ParseSizes(example)
	require.NoError(t, err)

	want := Sizes{
		"/":    48381165,
		"/a":   94853,
		"/a/e": 584,
		"/d":   24933642,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSizes mismatch (-want +got):\n%s", diff)
	}
}

func TestSumSmallDirs(t *testing.T) {
	got, err := SumSmallDirs(example, 100_000)
	require.NoError(t, err)
	assert.Equal(t, 95437, got)
}

func TestSmallestDirToFree(t *testing.T) {
	got, err := SmallestDirToFree(example, 70_000_000, 30_000_000)
	require.NoError(t, err)
	assert.Equal(t, 24933642, got)

	_, err = SmallestDirToFree(example, 10, 30_000_000)
	assert.ErrorIs(t, err, ErrNoCandidate)
}

// Directories sharing a name prefix must not be counted as nested.
func TestPrefixedSiblings(t *testing.T) {
	const in = `$ cd /
$ ls
dir a
dir ab
$ cd a
$ ls
10 x
$ cd ..
$ cd ab
$ ls
20 y`

	got, err := ParseSizes(in)
	require.NoError(t, err)
	assert.Equal(t, 10, got["/a"])
	assert.Equal(t, 20, got["/ab"])
	assert.Equal(t, 30, got["/"])
}

func TestRepeatedListing(t *testing.T) {
	const in = `$ cd /
$ ls
dir a
5 x
$ cd a
$ ls
10 x
$ ls
10 x
$ cd /
$ ls
dir a
5 x`

	got, err := ParseSizes(in)
	require.NoError(t, err)
	assert.Equal(t, 10, got["/a"])
	assert.Equal(t, 15, got["/"])
}

func TestMalformed(t *testing.T) {
	tests := []string{
		"$ cd ..",
		"$ rm -rf /",
		"$ cd /\n$ ls\nbig file",
		"$ cd /\n$ ls\n1 2 3",
	}
	for _, in := range tests {
		_, err := ParseSizes(in)
		assert.ErrorIs(t, err, input.ErrMalformed, in)
	}
}
