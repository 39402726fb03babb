package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTiles(t *testing.T) {
	tests := []struct {
		name     string
		from, to Tile
		want     []Tile
	}{
		{
			name: "horizontal",
			from: Tile{Col: 0, Row: 0},
			to:   Tile{Col: 4, Row: 0},
			want: []Tile{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
		},
		{
			name: "diagonal",
			from: Tile{Col: 0, Row: 0},
			to:   Tile{Col: 3, Row: 3},
			want: []Tile{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name: "steep",
			from: Tile{Col: 0, Row: 0},
			to:   Tile{Col: 1, Row: 4},
			want: []Tile{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {1, 4}},
		},
		{
			name: "single tile",
			from: Tile{Col: 5, Row: 5},
			to:   Tile{Col: 5, Row: 5},
			want: []Tile{{5, 5}},
		},
		{
			name: "reverse horizontal",
			from: Tile{Col: 4, Row: 0},
			to:   Tile{Col: 0, Row: 0},
			want: []Tile{{4, 0}, {3, 0}, {2, 0}, {1, 0}, {0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineTiles(tt.from, tt.to))
		})
	}
}

func TestCanSeeTarget(t *testing.T) {
	from := Tile{Col: 0, Row: 5}
	to := Tile{Col: 10, Row: 5}

	t.Run("clear line", func(t *testing.T) {
		assert.True(t, CanSeeTarget(from, to, func(Tile) bool { return false }))
	})

	t.Run("interior blocker", func(t *testing.T) {
		wall := Tile{Col: 5, Row: 5}
		assert.False(t, CanSeeTarget(from, to, func(t Tile) bool { return t == wall }))
	})

	t.Run("endpoints not tested", func(t *testing.T) {
		assert.True(t, CanSeeTarget(from, to, func(t Tile) bool {
			return t == from || t == to
		}))
	})

	t.Run("nil predicate sees everything", func(t *testing.T) {
		assert.True(t, CanSeeTarget(from, to, nil))
	})
}
