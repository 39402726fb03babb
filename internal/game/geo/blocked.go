package geo

// blockedDirections marks the neighbor indexes a walking search must not
// expand. A neighbor blocked for characters is removed outright; a removed
// diagonal that is also a hard obstacle removes its two orthogonal flanks,
// so paths never clip a solid corner.
func blockedDirections(neighbors [8]Tile, obs Obstacles) [8]bool {
	var removed [8]bool
	for i, n := range neighbors {
		if !obs.blocks(n) {
			continue
		}
		removed[i] = true
		if i&1 == 0 || !obs.hardAt(n) {
			continue
		}
		switch i {
		case 1: // SW blocks S, W
			removed[0] = true
			removed[2] = true
		case 3: // NW blocks W, N
			removed[2] = true
			removed[4] = true
		case 5: // NE blocks N, E
			removed[4] = true
			removed[6] = true
		case 7: // SE blocks S, E
			removed[0] = true
			removed[6] = true
		}
	}
	return removed
}

// canMoveDirection reports whether direction d is legal under the movement
// restriction: 1 allows only direction 0, 2 adds direction 4, 4 allows the
// four orthogonals, 8 allows everything.
func canMoveDirection(d, count int) bool {
	switch count {
	case 1:
		return d == 0
	case 2:
		return d == 0 || d == 4
	case 4:
		return d&1 == 0
	default:
		return d < count
	}
}

// validNeighbors returns the expansion set for one tile: neighbors that are
// unblocked and direction-legal. The destination is always kept so a search
// can terminate exactly on its goal.
func validNeighbors(t, destination Tile, obs Obstacles, dirCount int) []Tile {
	neighbors := Neighbors(t)
	removed := blockedDirections(neighbors, obs)

	valid := make([]Tile, 0, 8)
	for d, n := range neighbors {
		if n == destination || (!removed[d] && canMoveDirection(d, dirCount)) {
			valid = append(valid, n)
		}
	}
	return valid
}
