package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Path returns the document path for a level without extension.
func Path(level int) string {
	return fmt.Sprintf("maps/map.%d", level)
}

// Load finds and parses the document for level inside fsys. A Tiled JSON file
// wins over a TMX file of the same level.
func Load(fsys fs.FS, level int) (*Document, error) {
	base := Path(level)

	f, err := fsys.Open(base + ".json")
	switch {
	case err == nil:
		defer f.Close()
		doc, err := ParseJSON(f)
		if err != nil {
			return nil, fmt.Errorf("load %s.json: %w", base, err)
		}
		return doc, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("open %s.json: %w", base, err)
	}

	if _, err := fs.Stat(fsys, base+".tmx"); err == nil {
		return LoadTMX(fsys, base+".tmx")
	}

	return nil, fmt.Errorf("level %d: %w", level, ErrNotFound)
}

// LoadTMX parses a TMX file. Tiles are turned back into raw gids (tileset
// first gid + local id, flip flags restored) so both formats share the same
// id conversion.
func LoadTMX(fsys fs.FS, tmxPath string) (*Document, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	doc := &Document{
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		gids := make([]uint32, len(layer.Tiles))
		for i, tile := range layer.Tiles {
			gids[i] = rawGID(tile)
		}
		doc.Layers = append(doc.Layers, Layer{
			Name:   layer.Name,
			Kind:   DataLayer,
			Width:  levelMap.Width,
			Height: levelMap.Height,
			GIDs:   gids,
		})
	}

	for _, og := range levelMap.ObjectGroups {
		layer := Layer{Name: og.Name, Kind: ObjectLayer}
		for _, o := range og.Objects {
			typ := o.Class
			if typ == "" {
				typ = o.Type //nolint:staticcheck // older TMX files use type=
			}
			layer.Objects = append(layer.Objects, Object{
				Name: o.Name,
				Type: typ,
				X:    int(o.X),
				Y:    int(o.Y),
			})
		}
		doc.Layers = append(doc.Layers, layer)
	}

	return doc, nil
}

func rawGID(tile *tiled.LayerTile) uint32 {
	if tile == nil || tile.IsNil() || tile.Tileset == nil {
		return 0
	}
	gid := tile.Tileset.FirstGID + tile.ID
	if tile.HorizontalFlip {
		gid |= FlippedHorizontally
	}
	if tile.VerticalFlip {
		gid |= FlippedVertically
	}
	if tile.DiagonalFlip {
		gid |= FlippedDiagonally
	}
	return gid
}
