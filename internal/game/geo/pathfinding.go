package geo

import (
	"container/heap"
	"fmt"
)

// PathType selects a search strategy for FindPath.
type PathType int

const (
	// PathOneStep walks a handful of greedy steps toward the goal. Cheap,
	// used every frame for close-quarters shuffling.
	PathOneStep PathType = iota
	// SimpleMaxNpcTry is greedy best-first: frontier ordered by heuristic
	// only, capped at NpcMaxTry pops.
	SimpleMaxNpcTry
	// PerfectMaxNpcTry is A* capped at NpcMaxTry pops.
	PerfectMaxNpcTry
	// PerfectMaxPlayerTry is A* capped at PlayerMaxTry pops; the cap can be
	// lifted via FindPathLimit with MaxTryUnlimited.
	PerfectMaxPlayerTry
	// PathStraightLine expands all 8 neighbors with no obstacle filtering,
	// for flying or ghost agents.
	PathStraightLine
)

// String implements fmt.Stringer.
func (p PathType) String() string {
	switch p {
	case PathOneStep:
		return "one_step"
	case SimpleMaxNpcTry:
		return "simple_npc"
	case PerfectMaxNpcTry:
		return "perfect_npc"
	case PerfectMaxPlayerTry:
		return "perfect_player"
	case PathStraightLine:
		return "straight_line"
	default:
		return fmt.Sprintf("path_type(%d)", int(p))
	}
}

// ParsePathType converts a config/CLI name to a PathType.
func ParsePathType(s string) (PathType, error) {
	switch s {
	case "one_step":
		return PathOneStep, nil
	case "simple_npc":
		return SimpleMaxNpcTry, nil
	case "perfect_npc":
		return PerfectMaxNpcTry, nil
	case "perfect_player":
		return PerfectMaxPlayerTry, nil
	case "straight_line":
		return PathStraightLine, nil
	default:
		return 0, fmt.Errorf("unknown path type %q", s)
	}
}

// Obstacles bundles the caller-supplied passability predicates. The engine
// has no knowledge of other agents, so occupancy arrives as a callback;
// the terrain predicates usually delegate to a Terrain. Any nil predicate
// reports "not an obstacle".
type Obstacles struct {
	// HasDynamic reports transient entity occupancy (another agent standing
	// on the tile).
	HasDynamic func(Tile) bool
	// Character reports tiles a walking character cannot enter.
	Character func(Tile) bool
	// Hard reports solid tiles: diagonal corner blocking and projectile
	// bounces key off this one.
	Hard func(Tile) bool
}

// TerrainObstacles builds the predicate bundle for static terrain only.
func TerrainObstacles(t *Terrain) Obstacles {
	return Obstacles{
		Character: t.IsObstacleForCharacter,
		Hard:      t.IsObstacle,
	}
}

func (o Obstacles) blocks(t Tile) bool {
	if o.HasDynamic != nil && o.HasDynamic(t) {
		return true
	}
	return o.Character != nil && o.Character(t)
}

func (o Obstacles) hardAt(t Tile) bool {
	return o.Hard != nil && o.Hard(t)
}

// FindPath searches for a tile path from start to end using the given
// strategy and its default iteration cap. dirCount restricts legal move
// directions (1, 2, 4 or 8; ignored by PathStraightLine).
//
// The returned path begins at start and, when the goal was reached, ends at
// end, with every consecutive pair 8-adjacent. An empty path is the unified
// "do nothing" signal: start equals end, the goal is blocked, no route was
// found, or the cap ran out first.
func FindPath(start, end Tile, pathType PathType, obs Obstacles, dirCount int) []Tile {
	return FindPathLimit(start, end, pathType, obs, dirCount, defaultMaxTry(pathType))
}

// FindPathLimit is FindPath with an explicit iteration cap. Pass
// MaxTryUnlimited to search without bound.
func FindPathLimit(start, end Tile, pathType PathType, obs Obstacles, dirCount, maxTry int) []Tile {
	if start == end {
		return nil
	}
	if obs.blocks(end) {
		return nil
	}

	switch pathType {
	case PathOneStep:
		return findPathStep(start, end, obs, dirCount, maxTry)
	case SimpleMaxNpcTry:
		return findPathGreedy(start, end, obs, dirCount, maxTry)
	case PerfectMaxNpcTry, PerfectMaxPlayerTry:
		return findPathAStar(start, end, obs, dirCount, maxTry)
	case PathStraightLine:
		return findPathStraight(start, end, maxTry)
	default:
		return nil
	}
}

func defaultMaxTry(pathType PathType) int {
	switch pathType {
	case PathOneStep:
		return OneStepMaxTry
	case PerfectMaxPlayerTry:
		return PlayerMaxTry
	case PathStraightLine:
		return StraightLineMaxTry
	default:
		return NpcMaxTry
	}
}

// findPathStep is the greedy directional walk. At each tile it buckets the
// bearing to the goal and tries directions in order of closeness to it:
// exact, +1, -1, +2, -2, +3, -3, opposite. The result is a prefix path that
// may legitimately stop short of the goal.
func findPathStep(start, end Tile, obs Obstacles, dirCount, maxSteps int) []Tile {
	path := make([]Tile, 0, maxSteps+1)
	path = append(path, start)
	visited := map[Tile]struct{}{start: {}}
	current := start
	endPixel := ToPixelPosition(end.Col, end.Row)

	for step := 0; step < maxSteps; step++ {
		curPixel := ToPixelPosition(current.Col, current.Row)
		bearing := DirectionIndex(endPixel.X-curPixel.X, endPixel.Y-curPixel.Y)

		neighbors := Neighbors(current)
		removed := blockedDirections(neighbors, obs)

		order := [8]int{
			bearing,
			(bearing + 1) % 8,
			(bearing + 7) % 8,
			(bearing + 2) % 8,
			(bearing + 6) % 8,
			(bearing + 3) % 8,
			(bearing + 5) % 8,
			(bearing + 4) % 8,
		}

		next, found := Tile{}, false
		for _, d := range order {
			n := neighbors[d]
			if removed[d] || !canMoveDirection(d, dirCount) {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			next, found = n, true
			break
		}
		if !found {
			break
		}

		current = next
		path = append(path, current)
		visited[current] = struct{}{}
		if current == end {
			break
		}
	}

	if len(path) < 2 {
		return nil
	}
	return path
}

// findPathGreedy is greedy best-first search: the frontier is ordered by
// heuristic alone and each tile is recorded in cameFrom at most once.
func findPathGreedy(start, end Tile, obs Obstacles, dirCount, maxTry int) []Tile {
	frontier := newFrontier()
	frontier.push(start, 0, 0)
	cameFrom := make(map[Tile]Tile, 64)

	for tries := 0; !frontier.empty(); tries++ {
		if maxTry != MaxTryUnlimited && tries >= maxTry {
			break
		}
		current := frontier.pop().tile
		if current == end {
			break
		}
		for _, n := range validNeighbors(current, end, obs, dirCount) {
			if _, seen := cameFrom[n]; seen {
				continue
			}
			cameFrom[n] = current
			frontier.push(n, PixelDistance(n, end), 0)
		}
	}

	return reconstructPath(cameFrom, start, end)
}

// findPathAStar is A*: frontier priority is cumulative pixel cost plus
// heuristic, with cost-improving re-insertion.
func findPathAStar(start, end Tile, obs Obstacles, dirCount, maxTry int) []Tile {
	frontier := newFrontier()
	frontier.push(start, 0, 0)
	cameFrom := make(map[Tile]Tile, 64)
	costSoFar := map[Tile]float64{start: 0}

	for tries := 0; !frontier.empty(); tries++ {
		if maxTry != MaxTryUnlimited && tries >= maxTry {
			break
		}
		current := frontier.pop().tile
		if current == end {
			break
		}
		for _, n := range validNeighbors(current, end, obs, dirCount) {
			newCost := costSoFar[current] + PixelDistance(current, n)
			if old, seen := costSoFar[n]; seen && newCost >= old {
				continue
			}
			costSoFar[n] = newCost
			cameFrom[n] = current
			frontier.push(n, newCost+PixelDistance(n, end), newCost)
		}
	}

	return reconstructPath(cameFrom, start, end)
}

// findPathStraight ignores obstacles entirely: all 8 neighbors are
// expanded and every popped tile is appended to the output directly. Used
// by flying and ghost agents.
func findPathStraight(start, end Tile, maxTry int) []Tile {
	frontier := newFrontier()
	frontier.push(start, 0, 0)
	seen := map[Tile]struct{}{start: {}}
	path := make([]Tile, 0, 16)

	for tries := 0; !frontier.empty(); tries++ {
		if maxTry != MaxTryUnlimited && tries >= maxTry {
			break
		}
		current := frontier.pop().tile
		path = append(path, current)
		if current == end {
			break
		}
		for _, n := range Neighbors(current) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			frontier.push(n, PixelDistance(n, end), 0)
		}
	}

	return path
}

// reconstructPath walks cameFrom from end back to start and reverses.
// Returns nil when the search never reached end.
func reconstructPath(cameFrom map[Tile]Tile, start, end Tile) []Tile {
	if _, ok := cameFrom[end]; !ok {
		return nil
	}

	path := make([]Tile, 0, 16)
	for current := end; current != start; {
		path = append(path, current)
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		current = prev
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// HasObstacleInPath reports whether any tile of the path is a map obstacle.
// An empty path counts as blocked.
func HasObstacleInPath(path []Tile, isMapObstacle func(Tile) bool) bool {
	if len(path) == 0 {
		return true
	}
	for _, t := range path {
		if isMapObstacle != nil && isMapObstacle(t) {
			return true
		}
	}
	return false
}

// FindNearestWalkableTileInDirection greedily walks from start toward
// target's bearing (trying the exact bearing, then the +-1 and +-2
// alternates), accepting only steps that strictly shrink the remaining
// pixel distance. It returns the farthest tile reached, or false when not
// even a first step is possible. maxSteps <= 0 uses
// DefaultNearestWalkSteps. Fallback for "get as close as possible" after a
// full search failed.
func FindNearestWalkableTileInDirection(start, target Tile, isMapObstacle func(Tile) bool, maxSteps int) (Tile, bool) {
	if maxSteps <= 0 {
		maxSteps = DefaultNearestWalkSteps
	}

	current := start
	targetPixel := ToPixelPosition(target.Col, target.Row)
	moved := false

	for step := 0; step < maxSteps && current != target; step++ {
		curPixel := ToPixelPosition(current.Col, current.Row)
		bearing := DirectionIndex(targetPixel.X-curPixel.X, targetPixel.Y-curPixel.Y)
		remaining := PixelDistance(current, target)
		neighbors := Neighbors(current)

		next, found := Tile{}, false
		for _, off := range [5]int{0, 1, 7, 2, 6} {
			n := neighbors[(bearing+off)%8]
			if isMapObstacle != nil && isMapObstacle(n) {
				continue
			}
			if PixelDistance(n, target) >= remaining {
				continue
			}
			next, found = n, true
			break
		}
		if !found {
			break
		}
		current = next
		moved = true
	}

	if !moved {
		return Tile{}, false
	}
	return current, true
}

// pathNode is one frontier entry. seq preserves insertion order so equal
// priorities pop first-in first-out, keeping searches deterministic.
type pathNode struct {
	tile  Tile
	fCost float64
	gCost float64
	seq   int
	index int // heap index
}

// frontier is a min-heap priority queue over pathNodes.
type frontier struct {
	nodes nodeHeap
	seq   int
}

func newFrontier() *frontier {
	f := &frontier{nodes: make(nodeHeap, 0, 64)}
	heap.Init(&f.nodes)
	return f
}

func (f *frontier) push(t Tile, fCost, gCost float64) {
	heap.Push(&f.nodes, &pathNode{tile: t, fCost: fCost, gCost: gCost, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() *pathNode {
	return heap.Pop(&f.nodes).(*pathNode)
}

func (f *frontier) empty() bool {
	return f.nodes.Len() == 0
}

// nodeHeap implements container/heap (min by fCost, then insertion order).
type nodeHeap []*pathNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].fCost != h[j].fCost {
		return h[i].fCost < h[j].fCost
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x any)   { n := x.(*pathNode); n.index = len(*h); *h = append(*h, n) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // GC
	node.index = -1
	*h = old[:n-1]
	return node
}
