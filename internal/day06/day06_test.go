package day06

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerEnd(t *testing.T) {
	tests := []struct {
		stream  string
		packet  int
		message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}

	for _, tt := range tests {
		t.Run(tt.stream, func(t *testing.T) {
			got, err := MarkerEnd(tt.stream, PacketMarkerSize)
			require.NoError(t, err)
			assert.Equal(t, tt.packet, got)

			got, err = MarkerEnd(tt.stream, MessageMarkerSize)
			require.NoError(t, err)
			assert.Equal(t, tt.message, got)
		})
	}
}

func TestSmallMarkers(t *testing.T) {
	tests := []struct {
		stream string
		size   int
		want   int
	}{
		{"ABC", 2, 2},
		{"AAABC", 3, 5},
		{"ABCCDEF", 4, 7},
		{"A", 1, 1},
	}
	for _, tt := range tests {
		got, err := MarkerEnd(tt.stream, tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.stream)
	}
}

func TestNoMarker(t *testing.T) {
	_, err := MarkerEnd(strings.Repeat("m", 39), 15)
	assert.ErrorIs(t, err, ErrNoMarker)

	_, err = MarkerEnd("", PacketMarkerSize)
	assert.ErrorIs(t, err, ErrNoMarker)

	_, err = MarkerEnd("abc", 0)
	assert.Error(t, err)
}

func BenchmarkMarkerEnd(b *testing.B) {
	stream := strings.Repeat("abcabcabcd", 400) + "abcdefghijklmn"
	for i := 0; i < b.N; i++ {
		if _, err := MarkerEnd(stream, MessageMarkerSize); err != nil {
			b.Fatalf("MarkerEnd failed: %v", err)
		}
	}
}
