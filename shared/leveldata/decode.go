package leveldata

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// DecodeBase64Zlib decodes a base64 payload and inflates it.
func DecodeBase64Zlib(data string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return nil, fmt.Errorf("base64: %w", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	return out, nil
}

// ReadGIDs reads n little-endian 32-bit gids from buf.
func ReadGIDs(buf []byte, n int) ([]uint32, error) {
	if len(buf) < n*4 {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortLayer, n*4, len(buf))
	}
	gids := make([]uint32, n)
	for i := range gids {
		gids[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return gids, nil
}

// TileID converts a raw gid into the internal id: orientation flags are
// masked away, 1-based ids become 0-based and 0 becomes Empty.
func TileID(gid uint32) int {
	gid &^= flagMask
	if gid == 0 {
		return Empty
	}
	return int(gid) - 1
}

// Grid returns the internal ids of the top-left rows x cols cells of a data
// layer.
func (l *Layer) Grid(rows, cols int) ([][]int, error) {
	if l.Kind != DataLayer {
		return nil, fmt.Errorf("layer %q is not a data layer", l.Name)
	}
	width := l.Width
	if width == 0 {
		width = cols
	}
	if width < cols || len(l.GIDs) < width*(rows-1)+cols {
		return nil, fmt.Errorf("layer %q: %w (%d cells for %dx%d)", l.Name, ErrShortLayer, len(l.GIDs), cols, rows)
	}

	out := make([][]int, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			out[r][c] = TileID(l.GIDs[r*width+c])
		}
	}
	return out, nil
}
