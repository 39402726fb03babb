package geo

import "fmt"

// Terrain holds the per-tile barrier bytes and trap indices of one map.
// It is populated once by the map loader and read-only afterwards; every
// query takes the Terrain explicitly, there is no package-level current
// map.
type Terrain struct {
	columns, rows int32
	barriers      []byte
	traps         []byte
}

// NewTerrain creates a Terrain of columns x rows tiles. barriers and traps
// are flat arrays indexed col + row*columns; either may be nil, in which
// case a zeroed array is allocated.
func NewTerrain(columns, rows int32, barriers, traps []byte) (*Terrain, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("terrain size %dx%d: both dimensions must be positive", columns, rows)
	}
	size := int(columns) * int(rows)
	if barriers == nil {
		barriers = make([]byte, size)
	} else if len(barriers) != size {
		return nil, fmt.Errorf("barrier array length %d, want %d", len(barriers), size)
	}
	if traps == nil {
		traps = make([]byte, size)
	} else if len(traps) != size {
		return nil, fmt.Errorf("trap array length %d, want %d", len(traps), size)
	}
	return &Terrain{columns: columns, rows: rows, barriers: barriers, traps: traps}, nil
}

// Columns returns the tile column count.
func (t *Terrain) Columns() int32 { return t.columns }

// Rows returns the tile row count.
func (t *Terrain) Rows() int32 { return t.rows }

// SetBarrier sets the barrier byte of one tile. Load-time only; out-of-range
// addresses are ignored.
func (t *Terrain) SetBarrier(col, row int32, barrier byte) {
	if !t.TileInRange(col, row) {
		return
	}
	t.barriers[col+row*t.columns] = barrier
}

// SetTrap sets the trap index of one tile. Load-time only; out-of-range
// addresses are ignored.
func (t *Terrain) SetTrap(col, row int32, index byte) {
	if !t.TileInRange(col, row) {
		return
	}
	t.traps[col+row*t.columns] = index
}

// Barrier returns the barrier byte of one tile, BarrierNone when out of
// range.
func (t *Terrain) Barrier(col, row int32) byte {
	if !t.TileInRange(col, row) {
		return BarrierNone
	}
	return t.barriers[col+row*t.columns]
}

// TileInRange reports whether (col, row) addresses a tile on this map.
func (t *Terrain) TileInRange(col, row int32) bool {
	return col >= 0 && col < t.columns && row >= 0 && row < t.rows
}

// TileInViewRange reports whether (col, row) is inside the playable view
// range. Row 0 and the last row are always excluded; the asymmetry with
// the column bounds is intentional, kept for map compatibility.
func (t *Terrain) TileInViewRange(col, row int32) bool {
	return col >= 0 && col < t.columns && row > 0 && row < t.rows-1
}

// IsObstacle reports a hard obstacle: out of view range, or the Obstacle
// bit set. Hard obstacles block projectiles and forbid cutting their
// corners diagonally.
func (t *Terrain) IsObstacle(tile Tile) bool {
	if !t.TileInViewRange(tile.Col, tile.Row) {
		return true
	}
	return t.barriers[tile.Col+tile.Row*t.columns]&BarrierObstacle != 0
}

// IsObstacleForCharacter reports a tile a walking character cannot enter:
// out of view range, or either the Obstacle or Trans bit set.
func (t *Terrain) IsObstacleForCharacter(tile Tile) bool {
	if !t.TileInViewRange(tile.Col, tile.Row) {
		return true
	}
	return t.barriers[tile.Col+tile.Row*t.columns]&(BarrierObstacle|BarrierTrans) != 0
}

// IsObstacleForCharacterJump reports a tile a jumping character cannot
// clear. Jumps pass over anything carrying the CanOver bit.
func (t *Terrain) IsObstacleForCharacterJump(tile Tile) bool {
	if !t.TileInViewRange(tile.Col, tile.Row) {
		return true
	}
	b := t.barriers[tile.Col+tile.Row*t.columns]
	return !(b == BarrierNone || b&BarrierCanOver != 0)
}

// IsObstacleForMagic reports a tile a projectile cannot pass. Trans tiles
// block characters but are transparent to magic.
func (t *Terrain) IsObstacleForMagic(tile Tile) bool {
	if !t.TileInViewRange(tile.Col, tile.Row) {
		return true
	}
	b := t.barriers[tile.Col+tile.Row*t.columns]
	return !(b == BarrierNone || b&BarrierTrans != 0)
}

// TrapIndex returns the tile's trap identifier, 0 when the tile has no
// trap or is out of range. Trigger handling belongs to the caller.
func (t *Terrain) TrapIndex(tile Tile) int {
	if !t.TileInRange(tile.Col, tile.Row) {
		return 0
	}
	return int(t.traps[tile.Col+tile.Row*t.columns])
}
