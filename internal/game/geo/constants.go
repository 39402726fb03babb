package geo

// Tile pixel geometry. The map uses a staggered isometric layout: tile
// diamonds are 64px wide, paired into 64x32 pixel blocks, with tile rows
// indexed at double density (each row advances 16px; odd rows shift 32px
// right).
const (
	TileWidth      = 64
	TileHeight     = 32
	HalfTileWidth  = TileWidth / 2
	HalfTileHeight = TileHeight / 2
)

// Barrier bit flags, one byte per tile. Queries test bits with AND, so
// combined values (CanOverTrans, CanOverObstacle) behave as the union of
// their parts.
const (
	BarrierNone            byte = 0x00
	BarrierCanOver         byte = 0x20
	BarrierTrans           byte = 0x40
	BarrierCanOverTrans    byte = 0x60
	BarrierObstacle        byte = 0x80
	BarrierCanOverObstacle byte = 0xA0
)

// Search iteration caps. A cap counts frontier pops (steps for PathOneStep)
// and is a hard latency bound, not a soft timeout: hitting it returns
// whatever path data has been accumulated.
const (
	OneStepMaxTry      = 10
	NpcMaxTry          = 100
	PlayerMaxTry       = 500
	StraightLineMaxTry = 100

	// MaxTryUnlimited removes the cap (player searches on small maps).
	MaxTryUnlimited = -1

	// DefaultNearestWalkSteps bounds FindNearestWalkableTileInDirection.
	DefaultNearestWalkSteps = 30
)

// directionOffsets maps a direction index to its tile delta. Canonical
// order, y grows downward:
//
//	3 4 5
//	2 . 6
//	1 0 7
//
// 0=S 1=SW 2=W 3=NW 4=N 5=NE 6=E 7=SE. Every direction-dependent piece of
// this package (neighbor enumeration, bearing bucketing, bounce normals)
// derives from this one table.
var directionOffsets = [8]struct{ DC, DR int32 }{
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
}
