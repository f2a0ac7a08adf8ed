package leveldata

import (
	"fmt"
	"io/fs"

	cfg "github.com/automoto/dotjump/config"
	"github.com/lafriks/go-tiled"
)

// LoadTMX parses a Tiled map and places a platform for every non-empty tile
// of the platform layer. Tile (x, y) maps to the same cell as the glyph in
// column x+1 of row y of a text level.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{Name: tmxPath}
	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != cfg.Level.TMXLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Platforms = append(level.Platforms, CellPosition(x+1, y))
			}
		}
		break
	}

	if !found {
		return nil, fmt.Errorf("TMX %s: no %q tile layer", tmxPath, cfg.Level.TMXLayer)
	}
	return level, nil
}
