package geo

import "math"

// Tile is a grid cell address (column, row). Plain value type, unique per
// cell.
type Tile struct {
	Col, Row int32
}

// Vector is a position or direction in pixel space.
type Vector struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y} }

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y }

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector{v.X / l, v.Y / l}
}

// ToPixelPosition converts a tile address to its center in pixel space.
// Even rows anchor at x = 64*col, odd rows shift half a tile right; every
// row advances 16px down. Tile (0,0) maps to pixel (0,0).
func ToPixelPosition(col, row int32) Vector {
	return Vector{
		X: float64(col*TileWidth + (row&1)*HalfTileWidth),
		Y: float64(row * HalfTileHeight),
	}
}

// ToTilePosition converts a pixel position to the tile whose diamond
// contains it, the exact inverse of ToPixelPosition for tile centers.
// With boundCheck, any negative input clamps to tile (0,0).
//
// The map rows are indexed at double density relative to the 64x32 pixel
// blocks: the block's inscribed diamond belongs to the odd row 2*(y/32)+1,
// and each of the four corner triangles to an adjacent even row.
func ToTilePosition(x, y float64, boundCheck bool) Tile {
	if boundCheck && (x < 0 || y < 0) {
		return Tile{}
	}

	bx := math.Floor(x / TileWidth)
	by := math.Floor(y / TileHeight)
	col := int32(bx)
	row := int32(by)*2 + 1
	dx := x - bx*TileWidth
	dy := y - by*TileHeight

	if dx < HalfTileWidth {
		if dy < HalfTileHeight {
			if dx+2*dy < HalfTileWidth {
				row--
			}
		} else if dx-2*(dy-HalfTileHeight) < 0 {
			row++
		}
	} else {
		if dy < HalfTileHeight {
			if (dx-HalfTileWidth)-2*dy > 0 {
				row--
				col++
			}
		} else if (dx-HalfTileWidth)+2*(dy-HalfTileHeight) > HalfTileWidth {
			row++
			col++
		}
	}

	return Tile{Col: col, Row: row}
}

// Neighbors returns the 8 adjacent tiles in canonical direction order, so
// Neighbors(t)[d] is the tile one step in direction d.
func Neighbors(t Tile) [8]Tile {
	var n [8]Tile
	for d, off := range directionOffsets {
		n[d] = Tile{Col: t.Col + off.DC, Row: t.Row + off.DR}
	}
	return n
}

// DirectionIndex buckets a pixel-space vector into one of the 8 direction
// sectors (45 degrees each, centered on the compass angles, y grows down).
// The zero vector maps to direction 0.
func DirectionIndex(dx, dy float64) int {
	if dx == 0 && dy == 0 {
		return 0
	}
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	switch {
	case deg >= -22.5 && deg < 22.5:
		return 6 // E
	case deg >= 22.5 && deg < 67.5:
		return 7 // SE
	case deg >= 67.5 && deg < 112.5:
		return 0 // S
	case deg >= 112.5 && deg < 157.5:
		return 1 // SW
	case deg >= 157.5 || deg < -157.5:
		return 2 // W
	case deg >= -157.5 && deg < -112.5:
		return 3 // NW
	case deg >= -112.5 && deg < -67.5:
		return 4 // N
	default:
		return 5 // NE
	}
}

// DirectionVector returns the unit pixel-space vector at the center of
// direction d's sector.
func DirectionVector(d int) Vector {
	rad := (90 + 45*float64(d&7)) * math.Pi / 180
	return Vector{X: math.Cos(rad), Y: math.Sin(rad)}
}

// PixelDistance returns the Euclidean distance between two tile centers.
// Every frontier search orders by it.
func PixelDistance(a, b Tile) float64 {
	return ToPixelPosition(a.Col, a.Row).Sub(ToPixelPosition(b.Col, b.Row)).Length()
}
