package components

import (
	"image"

	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/leveldata"
	"github.com/yohamta/donburi"
)

// TileLayer indexes the three layers of a map cell.
type TileLayer int

const (
	LayerBackground1 TileLayer = iota
	LayerBackground2
	LayerForeground
)

// Tile is one map cell. Ids index the landscape sheet; leveldata.Empty
// marks an unset layer.
type Tile struct {
	Background1 int
	Background2 int
	Foreground  int
}

// EmptyTile has nothing on any layer.
func EmptyTile() Tile {
	return Tile{Background1: leveldata.Empty, Background2: leveldata.Empty, Foreground: leveldata.Empty}
}

func (t Tile) HasBackground1() bool { return t.Background1 != leveldata.Empty }
func (t Tile) HasBackground2() bool { return t.Background2 != leveldata.Empty }
func (t Tile) HasForeground() bool  { return t.Foreground != leveldata.Empty }

// Layer returns the tile id on layer l.
func (t Tile) Layer(l TileLayer) int {
	switch l {
	case LayerBackground1:
		return t.Background1
	case LayerBackground2:
		return t.Background2
	default:
		return t.Foreground
	}
}

// SetLayer stores id on layer l.
func (t *Tile) SetLayer(l TileLayer, id int) {
	switch l {
	case LayerBackground1:
		t.Background1 = id
	case LayerBackground2:
		t.Background2 = id
	default:
		t.Foreground = id
	}
}

// Cell addresses a tile by column and row.
type Cell struct {
	Col, Row int
}

// CellAt returns the cell containing map pixel (x, y).
func CellAt(x, y float64) Cell {
	return Cell{Col: int(x) / cfg.Map.TileSize, Row: int(y) / cfg.Map.TileSize}
}

// Center is the midpoint of the cell in map pixels.
func (c Cell) Center() image.Point {
	ts := cfg.Map.TileSize
	return image.Pt(c.Col*ts+ts/2, c.Row*ts+ts/2)
}

// GridData is the loaded level (singleton component).
type GridData struct {
	Rows, Cols int
	Tiles      []Tile // row-major
	Level      int
}

var Grid = donburi.NewComponentType[GridData]()

// NewGridData returns a rows x cols grid of empty tiles.
func NewGridData(rows, cols int) GridData {
	g := GridData{Rows: rows, Cols: cols, Tiles: make([]Tile, rows*cols)}
	g.Clear()
	return g
}

// Clear empties every layer of every tile.
func (g *GridData) Clear() {
	for i := range g.Tiles {
		g.Tiles[i] = EmptyTile()
	}
}

// InBounds reports whether (row, col) is on the map.
func (g *GridData) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the tile at (row, col), or nil off the map.
func (g *GridData) At(row, col int) *Tile {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.Tiles[row*g.Cols+col]
}

// Blocked reports whether a foreground tile stops movement into the cell.
// Gold bars and doors are walked onto.
func (g *GridData) Blocked(c Cell) bool {
	t := g.At(c.Row, c.Col)
	if t == nil {
		return true
	}
	if !t.HasForeground() {
		return false
	}
	return !cfg.IsGoldBar(t.Foreground) && !cfg.IsDoor(t.Foreground)
}
