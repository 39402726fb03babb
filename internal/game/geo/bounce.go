package geo

// BounceAtPoint reflects a projectile's direction off a point obstacle.
// The unit normal runs from the obstacle toward the projectile position and
// the standard reflection d - 2*(d.n)*n is applied. When direction is zero
// or the two positions coincide, the raw away-vector is returned instead of
// producing NaN.
func BounceAtPoint(direction, position, obstacle Vector) Vector {
	away := position.Sub(obstacle)
	if direction.IsZero() || away.IsZero() {
		return away
	}
	return reflect(direction, away.Normalize())
}

// BounceAtWall reflects a projectile's direction off a wall tile. The wall
// orientation is probed from the incoming bearing: the neighbor slots at
// offsets +2, -2, +1, -1 around it are tested for a hard obstacle, and the
// first hit defines the wall run. Its normal is the neighbor-to-wall center
// vector rotated 90 degrees. With no qualifying neighbor the wall acts as a
// point obstacle at its center.
func BounceAtWall(direction, position Vector, wall Tile, isHardObstacle func(Tile) bool) Vector {
	if direction.IsZero() {
		return direction
	}

	bearing := DirectionIndex(direction.X, direction.Y)
	neighbors := Neighbors(wall)

	found := -1
	for _, off := range [4]int{2, -2, 1, -1} {
		d := (bearing + off + 8) % 8
		if isHardObstacle != nil && isHardObstacle(neighbors[d]) {
			found = d
			break
		}
	}

	wallCenter := ToPixelPosition(wall.Col, wall.Row)
	if found < 0 {
		return BounceAtPoint(direction, position, wallCenter)
	}

	along := wallCenter.Sub(ToPixelPosition(neighbors[found].Col, neighbors[found].Row))
	normal := Vector{X: -along.Y, Y: along.X}
	if normal.IsZero() {
		return direction.Neg()
	}
	return reflect(direction, normal.Normalize())
}

// reflect mirrors v about the plane with unit normal n.
func reflect(v, n Vector) Vector {
	d := 2 * v.Dot(n)
	return Vector{X: v.X - d*n.X, Y: v.Y - d*n.Y}
}
