package nav

import "container/heap"

var neighborOffsets = [...]Tile{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// Pathfinder runs shortest-path searches over a Grid. It is safe to use
// before any grid has been attached; searches then report unreachable.
type Pathfinder struct {
	grid *Grid
}

func NewPathfinder() *Pathfinder {
	return &Pathfinder{}
}

func (p *Pathfinder) SetGrid(grid *Grid) {
	p.grid = grid
}

func (p *Pathfinder) Ready() bool {
	return p != nil && p.grid != nil
}

// FindPath returns the tile path from start (exclusive) to goal
// (inclusive) over 4-directional adjacency, or nil when the goal is out
// of bounds, blocked, or unreachable. Start and goal on the same tile
// yield an empty, non-nil path.
func (p *Pathfinder) FindPath(start, goal Tile) []Tile {
	if p == nil || p.grid == nil {
		return nil
	}
	g := p.grid
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}
	if g.Blocked(goal) {
		return nil
	}
	if start == goal {
		return []Tile{}
	}

	open := &nodeQueue{}
	heap.Init(open)
	heap.Push(open, &pathNode{tile: start, g: 0, f: heuristic(start, goal)})
	gScore := map[int]int{g.index(start): 0}
	closed := make(map[int]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		currIdx := g.index(current.tile)
		if _, seen := closed[currIdx]; seen {
			continue
		}
		closed[currIdx] = struct{}{}
		if current.tile == goal {
			return reconstruct(current)
		}

		for _, delta := range neighborOffsets {
			next := Tile{X: current.tile.X + delta.X, Y: current.tile.Y + delta.Y}
			if !g.InBounds(next) || g.Blocked(next) {
				continue
			}
			idx := g.index(next)
			if _, seen := closed[idx]; seen {
				continue
			}
			tentative := current.g + 1
			if prev, ok := gScore[idx]; ok && tentative >= prev {
				continue
			}
			gScore[idx] = tentative
			heap.Push(open, &pathNode{
				tile:   next,
				g:      tentative,
				f:      tentative + heuristic(next, goal),
				parent: current,
			})
		}
	}
	return nil
}

func heuristic(a, b Tile) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// reconstruct walks parent links back to the start and drops the start
// tile itself.
func reconstruct(end *pathNode) []Tile {
	path := make([]Tile, 0)
	for node := end; node != nil; node = node.parent {
		path = append(path, node.tile)
	}
	for i := 0; i < len(path)/2; i++ {
		j := len(path) - 1 - i
		path[i], path[j] = path[j], path[i]
	}
	return path[1:]
}

type pathNode struct {
	tile   Tile
	g      int
	f      int
	index  int
	parent *pathNode
}

type nodeQueue []*pathNode

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool { return q[i].f < q[j].f }

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x any) {
	n := len(*q)
	item := x.(*pathNode)
	item.index = n
	*q = append(*q, item)
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}
