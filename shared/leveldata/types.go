// Package leveldata turns Tiled level documents (JSON or TMX) into plain tile-id
// grids and point objects. It has no dependencies on ebitengine or donburi.
package leveldata

import "errors"

// Orientation flags Tiled stores in the top bits of every gid.
const (
	FlippedHorizontally uint32 = 0x80000000
	FlippedVertically   uint32 = 0x40000000
	FlippedDiagonally   uint32 = 0x20000000

	flagMask = FlippedHorizontally | FlippedVertically | FlippedDiagonally
)

// Empty is the internal id of a cell with nothing on it.
const Empty = -1

var (
	// ErrShortLayer is returned when a data layer decodes to fewer cells than
	// the grid it is loaded into.
	ErrShortLayer = errors.New("layer data shorter than map")
	// ErrNotFound is returned when no document exists for a level.
	ErrNotFound = errors.New("level document not found")
)

type LayerKind int

const (
	DataLayer LayerKind = iota
	ObjectLayer
)

// Layer is one named layer of a level document. Data layers carry raw gids in
// row-major order; object layers carry point objects.
type Layer struct {
	Name    string
	Kind    LayerKind
	Width   int
	Height  int
	GIDs    []uint32
	Objects []Object
}

// Object is a point object. Type holds the numeric sprite id as a string,
// the way the level editor stores it.
type Object struct {
	Name string
	Type string
	X, Y int
}

// Document is a decoded level: layers in document order.
type Document struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Layers     []Layer
}
