package geo

// LineIterator steps through the tiles of a Bresenham line between two
// tiles, start and end inclusive.
type LineIterator struct {
	current, target    Tile
	deltaCol, deltaRow int32
	stepCol, stepRow   int32
	err                int32
	colDominant        bool
	started            bool
}

// NewLineIterator creates a line iterator from one tile to another.
func NewLineIterator(from, to Tile) *LineIterator {
	it := &LineIterator{current: from, target: to}

	it.deltaCol = abs32(to.Col - from.Col)
	it.deltaRow = abs32(to.Row - from.Row)

	if from.Col < to.Col {
		it.stepCol = 1
	} else {
		it.stepCol = -1
	}
	if from.Row < to.Row {
		it.stepRow = 1
	} else {
		it.stepRow = -1
	}

	it.colDominant = it.deltaCol >= it.deltaRow
	if it.colDominant {
		it.err = it.deltaCol / 2
	} else {
		it.err = it.deltaRow / 2
	}

	return it
}

// Next advances the iterator. Returns false once the target has been
// yielded.
func (it *LineIterator) Next() bool {
	if !it.started {
		it.started = true
		return true
	}

	if it.current == it.target {
		return false
	}

	if it.colDominant {
		it.current.Col += it.stepCol
		it.err += it.deltaRow
		if it.err >= it.deltaCol {
			it.current.Row += it.stepRow
			it.err -= it.deltaCol
		}
	} else {
		it.current.Row += it.stepRow
		it.err += it.deltaCol
		if it.err >= it.deltaRow {
			it.current.Col += it.stepCol
			it.err -= it.deltaRow
		}
	}

	return true
}

// Tile returns the current tile.
func (it *LineIterator) Tile() Tile { return it.current }

// LineTiles returns all tiles on the Bresenham line from one tile to
// another, endpoints included.
func LineTiles(from, to Tile) []Tile {
	tiles := make([]Tile, 0, int(abs32(to.Col-from.Col)+abs32(to.Row-from.Row))+1)
	for it := NewLineIterator(from, to); it.Next(); {
		tiles = append(tiles, it.Tile())
	}
	return tiles
}

// CanSeeTarget traces the tile line between two positions and reports
// whether no interior tile blocks it. The endpoints themselves are not
// tested, so an agent standing inside a bush can still be seen at the
// bush's own tile. Used with Terrain.IsObstacle for vision and with
// Terrain.IsObstacleForMagic for projectile reach.
func CanSeeTarget(from, to Tile, isBlocking func(Tile) bool) bool {
	if isBlocking == nil {
		return true
	}
	for _, t := range LineTiles(from, to) {
		if t == from || t == to {
			continue
		}
		if isBlocking(t) {
			return false
		}
	}
	return true
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
