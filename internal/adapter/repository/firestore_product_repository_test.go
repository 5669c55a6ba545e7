package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkIDs(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		size     int
		expected [][]string
	}{
		{
			name:     "empty input yields no chunks",
			ids:      nil,
			size:     10,
			expected: nil,
		},
		{
			name:     "under the bound stays one chunk",
			ids:      []string{"a", "b", "c"},
			size:     10,
			expected: [][]string{{"a", "b", "c"}},
		},
		{
			name:     "exactly the bound stays one chunk",
			ids:      []string{"a", "b", "c"},
			size:     3,
			expected: [][]string{{"a", "b", "c"}},
		},
		{
			name:     "over the bound splits with a short tail",
			ids:      []string{"a", "b", "c", "d", "e"},
			size:     2,
			expected: [][]string{{"a", "b"}, {"c", "d"}, {"e"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, chunkIDs(tt.ids, tt.size))
		})
	}
}
