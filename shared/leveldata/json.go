package leveldata

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

type jsonDocument struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	TileWidth  int         `json:"tilewidth"`
	TileHeight int         `json:"tileheight"`
	Layers     []jsonLayer `json:"layers"`
}

type jsonLayer struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Encoding    string          `json:"encoding"`
	Compression string          `json:"compression"`
	Data        json.RawMessage `json:"data"`
	Objects     []jsonObject    `json:"objects"`
}

type jsonObject struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Class string  `json:"class"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// ParseJSON reads a Tiled JSON level. Data layers may be base64+zlib encoded
// or plain gid arrays. Image and group layers are skipped.
func ParseJSON(r io.Reader) (*Document, error) {
	var raw jsonDocument
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	doc := &Document{
		Width:      raw.Width,
		Height:     raw.Height,
		TileWidth:  raw.TileWidth,
		TileHeight: raw.TileHeight,
	}

	for _, l := range raw.Layers {
		switch l.Type {
		case "objectgroup":
			doc.Layers = append(doc.Layers, jsonObjectLayer(l))
			continue
		case "tilelayer", "":
			// Untyped layers are read as tile data.
		default:
			continue
		}

		width, height := l.Width, l.Height
		if width == 0 {
			width, height = raw.Width, raw.Height
		}
		gids, err := decodeJSONData(l, width*height)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		doc.Layers = append(doc.Layers, Layer{
			Name:   l.Name,
			Kind:   DataLayer,
			Width:  width,
			Height: height,
			GIDs:   gids,
		})
	}

	return doc, nil
}

func jsonObjectLayer(l jsonLayer) Layer {
	layer := Layer{Name: l.Name, Kind: ObjectLayer}
	for _, o := range l.Objects {
		typ := o.Class
		if typ == "" {
			typ = o.Type
		}
		layer.Objects = append(layer.Objects, Object{
			Name: o.Name,
			Type: typ,
			X:    int(math.Trunc(o.X)),
			Y:    int(math.Trunc(o.Y)),
		})
	}
	return layer
}

func decodeJSONData(l jsonLayer, n int) ([]uint32, error) {
	trimmed := bytes.TrimSpace(l.Data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var gids []uint32
		if err := json.Unmarshal(trimmed, &gids); err != nil {
			return nil, fmt.Errorf("gid array: %w", err)
		}
		if len(gids) < n {
			return nil, fmt.Errorf("%w: %d of %d gids", ErrShortLayer, len(gids), n)
		}
		return gids, nil
	}

	var payload string
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("data payload: %w", err)
	}
	var (
		buf []byte
		err error
	)
	switch l.Compression {
	case "zlib":
		buf, err = DecodeBase64Zlib(payload)
	case "":
		buf, err = base64.StdEncoding.DecodeString(payload)
	default:
		return nil, fmt.Errorf("unsupported compression %q", l.Compression)
	}
	if err != nil {
		return nil, err
	}
	return ReadGIDs(buf, n)
}
