package systems

import (
	"testing"

	"github.com/automoto/jasmine/components"
)

const wall = 100

// gridFrom builds a grid from rows of '.' (open), '#' (wall) and 'g' (gold).
func gridFrom(rows ...string) *components.GridData {
	g := components.NewGridData(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case '#':
				g.At(r, c).Foreground = wall
			case 'g':
				g.At(r, c).Foreground = 295
			}
		}
	}
	return &g
}

func checkPath(t *testing.T, g *components.GridData, path []components.Cell, src, dst components.Cell) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("expected a path")
	}
	if path[0] != src || path[len(path)-1] != dst {
		t.Fatalf("expected path from %v to %v, got %v", src, dst, path)
	}
	for i := 1; i < len(path); i++ {
		step := absInt(path[i].Col-path[i-1].Col) + absInt(path[i].Row-path[i-1].Row)
		if step != 1 {
			t.Fatalf("expected edge-adjacent steps, got %v -> %v", path[i-1], path[i])
		}
		if g.Blocked(path[i]) {
			t.Fatalf("expected open cells only, got %v", path[i])
		}
	}
}

func TestFindPath(t *testing.T) {
	cases := []struct {
		name    string
		rows    []string
		src     components.Cell
		dst     components.Cell
		wantLen int
	}{
		{
			name:    "straight",
			rows:    []string{".....", ".....", "....."},
			src:     components.Cell{Col: 0, Row: 0},
			dst:     components.Cell{Col: 3, Row: 0},
			wantLen: 4,
		},
		{
			name: "around_wall",
			rows: []string{
				"..#..",
				"..#..",
				"..#..",
				"..#..",
				".....",
			},
			src:     components.Cell{Col: 0, Row: 0},
			dst:     components.Cell{Col: 4, Row: 0},
			wantLen: 13,
		},
		{
			name:    "through_gold",
			rows:    []string{"#####", "..g..", "#####"},
			src:     components.Cell{Col: 0, Row: 1},
			dst:     components.Cell{Col: 4, Row: 1},
			wantLen: 5,
		},
		{
			name:    "same_cell",
			rows:    []string{"..", ".."},
			src:     components.Cell{Col: 1, Row: 1},
			dst:     components.Cell{Col: 1, Row: 1},
			wantLen: 1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := gridFrom(c.rows...)
			path, ok := FindPath(g, c.src, c.dst)
			if !ok {
				t.Fatal("expected a path to be found")
			}
			if len(path) != c.wantLen {
				t.Errorf("expected %d cells, got %d: %v", c.wantLen, len(path), path)
			}
			checkPath(t, g, path, c.src, c.dst)
		})
	}
}

func TestFindPathNone(t *testing.T) {
	cases := []struct {
		name string
		grid *components.GridData
		src  components.Cell
		dst  components.Cell
	}{
		{"walled_in", gridFrom("..#..", "..#..", "..#.."), components.Cell{Col: 0, Row: 0}, components.Cell{Col: 4, Row: 2}},
		{"blocked_goal", gridFrom("...", ".#."), components.Cell{Col: 0, Row: 0}, components.Cell{Col: 1, Row: 1}},
		{"goal_off_map", gridFrom("...", "..."), components.Cell{Col: 0, Row: 0}, components.Cell{Col: 9, Row: 0}},
		{"start_off_map", gridFrom("...", "..."), components.Cell{Col: -1, Row: 0}, components.Cell{Col: 2, Row: 0}},
		{"no_grid", nil, components.Cell{}, components.Cell{Col: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if path, ok := FindPath(c.grid, c.src, c.dst); ok {
				t.Errorf("expected no path, got %v", path)
			}
		})
	}
}

func TestFindPathFromBlockedCell(t *testing.T) {
	g := gridFrom("#..", "...")
	src := components.Cell{Col: 0, Row: 0}
	dst := components.Cell{Col: 2, Row: 1}

	path, ok := FindPath(g, src, dst)
	if !ok {
		t.Fatal("expected a path out of a blocked start cell")
	}
	if path[0] != src || path[len(path)-1] != dst || len(path) != 4 {
		t.Errorf("expected a 4 cell path from %v to %v, got %v", src, dst, path)
	}
}
