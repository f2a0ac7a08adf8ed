// Package leveldata turns level descriptions into platform positions.
//
// Two formats are understood: the plain-text glyph map and Tiled TMX maps.
// Both place a platform for a grid cell (column, row) at
//
//	(OriginX + ColumnWidth*column, OriginY - RowHeight*row, PlatformZ)
//
// with columns counted from 1 and rows from 0.
package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"strings"

	cfg "github.com/automoto/dotjump/config"
)

// Point is a platform position in world space.
type Point struct {
	X, Y, Z float64
}

// Level is the parsed content of a level file.
type Level struct {
	Name      string
	Platforms []Point
}

// Bounds returns the extent of the platform positions. ok is false for a
// level without platforms.
func (l *Level) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(l.Platforms) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range l.Platforms {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY, true
}

// CellPosition maps a grid cell to its world position.
func CellPosition(column, row int) Point {
	return Point{
		X: cfg.Level.OriginX + cfg.Level.ColumnWidth*float64(column),
		Y: cfg.Level.OriginY - cfg.Level.RowHeight*float64(row),
		Z: cfg.Level.PlatformZ,
	}
}

// Load reads a level from fsys, choosing the format by file extension.
func Load(fsys fs.FS, name string) (*Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return LoadTMX(fsys, name)
	case ".txt", "":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", name, err)
		}
		return ParseText(name, string(data)), nil
	}
	return nil, fmt.Errorf("level %s: unsupported format %q", name, path.Ext(name))
}
