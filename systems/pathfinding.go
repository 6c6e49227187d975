package systems

import (
	astar "github.com/beefsack/go-astar"

	"github.com/automoto/jasmine/components"
)

// NavGrid adapts the tile grid to astar. Nodes are created on demand and
// reused, since astar tells nodes apart by identity.
type NavGrid struct {
	Grid  *components.GridData
	Nodes map[components.Cell]*NavNode
}

// NavNode is one walkable-or-not tile. Implements astar.Pather.
type NavNode struct {
	Cell components.Cell
	Nav  *NavGrid
}

var neighbourOffsets = [...]components.Cell{
	{Col: 0, Row: -1},
	{Col: -1, Row: 0},
	{Col: 0, Row: 1},
	{Col: 1, Row: 0},
}

// NewNavGrid wraps grid for path queries.
func NewNavGrid(grid *components.GridData) *NavGrid {
	return &NavGrid{Grid: grid, Nodes: make(map[components.Cell]*NavNode)}
}

func (g *NavGrid) node(c components.Cell) *NavNode {
	n, ok := g.Nodes[c]
	if !ok {
		n = &NavNode{Cell: c, Nav: g}
		g.Nodes[c] = n
	}
	return n
}

// PathNeighbors returns the open cells sharing an edge with n.
func (n *NavNode) PathNeighbors() []astar.Pather {
	neighbours := make([]astar.Pather, 0, len(neighbourOffsets))
	for _, d := range neighbourOffsets {
		c := components.Cell{Col: n.Cell.Col + d.Col, Row: n.Cell.Row + d.Row}
		if n.Nav.Grid.Blocked(c) {
			continue
		}
		neighbours = append(neighbours, n.Nav.node(c))
	}
	return neighbours
}

// PathNeighborCost is 1 for every step.
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

// PathEstimatedCost is the Manhattan distance to another node.
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*NavNode)
	return float64(absInt(t.Cell.Col-n.Cell.Col) + absInt(t.Cell.Row-n.Cell.Row))
}

// FindPath returns the cells from src to dst, both included, moving only
// between edge-adjacent open cells. src itself may be blocked.
func FindPath(grid *components.GridData, src, dst components.Cell) ([]components.Cell, bool) {
	if grid == nil || !grid.InBounds(src.Row, src.Col) || grid.Blocked(dst) {
		return nil, false
	}
	if src == dst {
		return []components.Cell{src}, true
	}

	nav := NewNavGrid(grid)
	path, _, found := astar.Path(nav.node(src), nav.node(dst))
	if !found || len(path) == 0 {
		return nil, false
	}

	cells := make([]components.Cell, len(path))
	for i, p := range path {
		cells[i] = p.(*NavNode).Cell
	}
	// astar reports the path goal first.
	if cells[0] != src {
		for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
			cells[i], cells[j] = cells[j], cells[i]
		}
	}
	return cells, true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
