package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPixelPosition(t *testing.T) {
	tests := []struct {
		name     string
		col, row int32
		wantX    float64
		wantY    float64
	}{
		{"origin", 0, 0, 0, 0},
		{"east", 1, 0, 64, 0},
		{"odd row shifts right", 0, 1, 32, 16},
		{"even row no shift", 0, 2, 0, 32},
		{"mid map", 5, 5, 352, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ToPixelPosition(tt.col, tt.row)
			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, tt.wantY, p.Y)
		})
	}
}

func TestTilePixelRoundTrip(t *testing.T) {
	// ToTilePosition must be the exact inverse of ToPixelPosition for every
	// non-negative tile.
	for col := int32(0); col < 50; col++ {
		for row := int32(0); row < 50; row++ {
			p := ToPixelPosition(col, row)
			got := ToTilePosition(p.X, p.Y, true)
			if got.Col != col || got.Row != row {
				t.Fatalf("round trip (%d,%d) -> (%g,%g) -> (%d,%d)",
					col, row, p.X, p.Y, got.Col, got.Row)
			}
		}
	}
}

func TestToTilePositionClampsNegative(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"negative x", -5, 100},
		{"negative y", 100, -5},
		{"both negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Tile{}, ToTilePosition(tt.x, tt.y, true))
		})
	}
}

func TestNeighborsOrder(t *testing.T) {
	// Canonical layout around (5,5):
	//  3 4 5
	//  2 . 6
	//  1 0 7
	n := Neighbors(Tile{Col: 5, Row: 5})
	want := [8]Tile{
		{5, 6}, // 0 S
		{4, 6}, // 1 SW
		{4, 5}, // 2 W
		{4, 4}, // 3 NW
		{5, 4}, // 4 N
		{6, 4}, // 5 NE
		{6, 5}, // 6 E
		{6, 6}, // 7 SE
	}
	assert.Equal(t, want, n)
}

func TestDirectionIndex(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   int
	}{
		{"south", 0, 1, 0},
		{"southwest", -1, 1, 1},
		{"west", -1, 0, 2},
		{"northwest", -1, -1, 3},
		{"north", 0, -1, 4},
		{"northeast", 1, -1, 5},
		{"east", 1, 0, 6},
		{"southeast", 1, 1, 7},
		{"zero vector", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectionIndex(tt.dx, tt.dy))
		})
	}
}

func TestDirectionIndexMatchesNeighborOrder(t *testing.T) {
	// The sector centers and the tile offsets must agree direction by
	// direction, otherwise bearing-driven searches walk sideways.
	for d, off := range directionOffsets {
		got := DirectionIndex(float64(off.DC), float64(off.DR))
		assert.Equal(t, d, got, "direction %d offset (%d,%d)", d, off.DC, off.DR)
	}
}

func TestDirectionVector(t *testing.T) {
	for d, off := range directionOffsets {
		v := DirectionVector(d)
		assert.InDelta(t, 1.0, v.Length(), 1e-9, "direction %d not unit", d)
		// Component signs must match the tile offset signs.
		assert.Equal(t, sign(float64(off.DC)), sign(round(v.X)), "direction %d x sign", d)
		assert.Equal(t, sign(float64(off.DR)), sign(round(v.Y)), "direction %d y sign", d)
	}
}

func TestPixelDistance(t *testing.T) {
	a := Tile{Col: 5, Row: 5}
	assert.Equal(t, 0.0, PixelDistance(a, a))
	assert.Equal(t, 64.0, PixelDistance(a, Tile{Col: 6, Row: 5}))
	assert.Equal(t, PixelDistance(a, Tile{Col: 9, Row: 2}), PixelDistance(Tile{Col: 9, Row: 2}, a))
}

func sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

// round snaps near-zero float noise so sign comparison is stable.
func round(f float64) float64 {
	if f > -1e-9 && f < 1e-9 {
		return 0
	}
	return f
}
