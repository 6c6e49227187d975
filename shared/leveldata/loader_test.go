package leveldata

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
)

func TestParseJSON(t *testing.T) {
	payload := encodeGIDs(t, []uint32{1, 0, 0, 1112})
	doc := fmt.Sprintf(`{
		"width": 2, "height": 2, "tilewidth": 32, "tileheight": 32,
		"layers": [
			{"name": "bg_1", "type": "tilelayer", "width": 2, "height": 2,
			 "encoding": "base64", "compression": "zlib", "data": %q},
			{"name": "fg", "type": "tilelayer", "width": 2, "height": 2,
			 "data": [0, 0, 296, 0]},
			{"name": "objects", "type": "objectgroup", "objects": [
				{"name": "Player", "type": "0", "x": 96.5, "y": 128},
				{"name": "Enemy", "class": "2", "x": 320, "y": 256}
			]}
		]
	}`, payload)

	d, err := ParseJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(d.Layers) != 3 {
		t.Fatalf("Expected 3 layers, got %d", len(d.Layers))
	}

	bg, err := d.Layers[0].Grid(2, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if bg[0][0] != 0 || bg[1][1] != 1111 || bg[0][1] != Empty {
		t.Errorf("Unexpected bg grid %v", bg)
	}

	fg, err := d.Layers[1].Grid(2, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fg[1][0] != 295 {
		t.Errorf("Expected gold bar id 295, got %d", fg[1][0])
	}

	objs := d.Layers[2]
	if objs.Kind != ObjectLayer || len(objs.Objects) != 2 {
		t.Fatalf("Unexpected object layer %+v", objs)
	}
	if objs.Objects[0].X != 96 || objs.Objects[0].Type != "0" {
		t.Errorf("Unexpected player object %+v", objs.Objects[0])
	}
	if objs.Objects[1].Type != "2" {
		t.Errorf("Expected class to be used as type, got %q", objs.Objects[1].Type)
	}
}

func TestParseJSONShortLayer(t *testing.T) {
	payload := encodeGIDs(t, []uint32{1, 2})
	doc := fmt.Sprintf(`{"width": 2, "height": 2, "layers": [
		{"name": "fg", "width": 2, "height": 2, "compression": "zlib", "data": %q}
	]}`, payload)

	_, err := ParseJSON(strings.NewReader(doc))
	if !errors.Is(err, ErrShortLayer) {
		t.Fatalf("Expected ErrShortLayer, got %v", err)
	}
}

func TestParseJSONSkipsOtherLayers(t *testing.T) {
	doc := `{"width": 1, "height": 1, "layers": [
		{"name": "sky", "type": "imagelayer", "image": "sky.png"},
		{"name": "props", "type": "group", "layers": []},
		{"name": "fg", "type": "tilelayer", "width": 1, "height": 1, "data": [3]},
		{"name": "spawns", "type": "objectgroup", "objects": []}
	]}`

	d, err := ParseJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(d.Layers) != 2 {
		t.Fatalf("Expected 2 layers, got %+v", d.Layers)
	}
	if d.Layers[0].Name != "fg" || d.Layers[0].Kind != DataLayer {
		t.Errorf("Expected fg data layer first, got %+v", d.Layers[0])
	}
	if d.Layers[1].Name != "spawns" || d.Layers[1].Kind != ObjectLayer {
		t.Errorf("Expected spawns object layer, got %+v", d.Layers[1])
	}
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" name="sprites" tilewidth="32" tileheight="32" tilecount="4368" columns="48">
  <image source="sprites.png" width="1536" height="2912"/>
 </tileset>
 <layer id="1" name="fg" width="2" height="2">
  <data encoding="csv">
0,1112,
2147483653,0
</data>
 </layer>
 <objectgroup id="2" name="objects">
  <object id="1" name="Enemy" type="1" x="64" y="96"/>
 </objectgroup>
</map>
`

func TestLoadPrefersJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/map.0.json": {Data: []byte(`{"width": 1, "height": 1, "layers": [{"name": "fg", "data": [3]}]}`)},
		"maps/map.0.tmx":  {Data: []byte(testTMX)},
	}

	doc, err := Load(fsys, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if doc.Width != 1 {
		t.Errorf("Expected the JSON document, got width %d", doc.Width)
	}
}

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"maps/map.1.tmx": {Data: []byte(testTMX)}}

	doc, err := Load(fsys, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var fg *Layer
	for i := range doc.Layers {
		if doc.Layers[i].Name == "fg" {
			fg = &doc.Layers[i]
		}
	}
	if fg == nil {
		t.Fatal("Expected fg layer")
	}

	grid, err := fg.Grid(2, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if grid[0][0] != Empty || grid[0][1] != 1111 || grid[1][0] != 4 {
		t.Errorf("Unexpected grid %v", grid)
	}

	var found bool
	for _, l := range doc.Layers {
		if l.Kind == ObjectLayer && len(l.Objects) == 1 && l.Objects[0].Name == "Enemy" && l.Objects[0].Type == "1" {
			found = true
		}
	}
	if !found {
		t.Error("Expected Enemy object with type 1")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(fstest.MapFS{}, 7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
